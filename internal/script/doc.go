// Package script parses the line-oriented batch language that drives a staged list.
//
// One command per line; blank lines and lines starting with '#' are ignored.
// Tokens follow shell quoting rules, so values may contain spaces when quoted.
//
//	insert <pos> <value...>   (alias: add)
//	delete <pos>              (aliases: del, remove)
//	commit
//	rollback
//	show [working|saved|all]  (alias: print)
package script
