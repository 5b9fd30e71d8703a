// Package roster loads the profiles shown in an avatar row.
//
// A roster file lists profiles and, optionally, the row settings to use
// for them. TOML and JSON are both accepted; the format is chosen by file
// extension:
//
//	[cluster]
//	spacing = -8.0
//	max_visible = 5
//	alignment = "center"
//	start_from = "end"
//
//	[[profile]]
//	name = "Ada Lovelace"
//	color = "#B3EBF2"
//
//	[[profile]]
//	name = "Grace Hopper"
//	image = "https://example.com/grace.png"
//
// Settings missing from the file keep the values of
// [cluster.DefaultSettings]. [Placeholder] builds a roster of made-up
// profiles for previews when no file is given.
package roster
