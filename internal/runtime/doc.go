// Package runtime provides the execution context for stagelist commands.
//
// It encapsulates shared dependencies needed by actions, such as the engine
// instance, logger, metrics recorder, and the identifier of the open batch.
package runtime
