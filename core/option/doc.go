/*
Package option provides optional values, used for node slots which may or may
not be present (a table caption, the assignment target of a script).

Options are matched rather than tested:

	caption := option.Match(tbl.Caption,
	    func(c []node.Inline) string { return "with caption" },
	    func() string { return "without caption" },
	)

______________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.
*/
package option
