// Package demo provides the built-in walkthrough of staged edits, commits,
// aborts and rollbacks.
package demo

// Step is one narrated stage of the walkthrough
type Step struct {
	Narration string
	Script    string
}

var demoSteps = []Step{
	{
		Narration: "Adding elements for the first commit",
		Script: `
insert 0 "This is node number 1"
insert 1 "This is node number 2"
insert 1 "This is node number 3"
commit
show
`,
	},
	{
		Narration: "Adding and deleting some more, then committing again",
		Script: `
insert 0 "This is node number 0"
insert 1 "This is node number 0.5"
insert 5 "This is node number 5"
delete 2
show
commit
show
`,
	},
	{
		Narration: "Editing once more and then rolling back by hand",
		Script: `
insert 5 "This is node number 6"
delete 2
show
rollback
show
`,
	},
	{
		Narration: "Adding two more where one is out of bounds, then committing",
		Script: `
insert 2 "This one will disappear!"
insert 12 "This one will not be seen in the list"
show
commit
show
`,
	},
}

// Steps returns the walkthrough steps in order
func Steps() []Step {
	steps := make([]Step, len(demoSteps))
	copy(steps, demoSteps)
	return steps
}
