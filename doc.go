// Package pipecodec converts between an ordered list of values and the single
// pipe-delimited text field used to edit it.
//
// # Quick Start
//
// Encode a list for display, decode the edited text back:
//
//	text := pipecodec.Encode([]string{"smoke", "login | logout"})
//	// text == `smoke | login \| logout`
//
//	values := pipecodec.Decode(" smoke |regression| ")
//	// values == []string{"smoke", "regression", ""}
//
// # Grammar
//
// Values are separated by "|". Encode writes " | " between values and
// escapes every literal pipe as \|. Decode reverses this:
//
//  1. A pipe preceded by an odd run of backslashes is literal; one backslash
//     of the run is consumed as the escape marker.
//  2. A pipe preceded by an even run (or none) separates values and the
//     backslashes are kept.
//  3. Spaces at the edges of each value are trimmed. Tabs are kept.
//  4. Empty values are preserved, and "" decodes to an empty list.
//
// Encode does not escape backslashes, so a value with backslashes right
// before a pipe does not survive a round trip, and neither does a value with
// edge spaces.
//
// # Settings
//
// Setting pairs a value list with its Kind (tags, setup and teardown calls,
// timeouts, arguments, imports). All kinds share the same codec:
//
//	s := pipecodec.NewSetting(pipecodec.ForceTags)
//	s.SetStrValue("smoke | nightly")
//	fmt.Println(s.Value) // [smoke nightly]
//
// Types that already own a list can implement Holder and use Render and
// Apply instead.
//
// All functions are pure and safe for concurrent use. A Setting is not
// synchronized.
package pipecodec
