// Package config defines the format-agnostic run file model and the
// loaders that fill it from HCL or YAML.
//
// A run file names the input file and the policy, and may place start and
// goal cells and pass policy parameters:
//
//	input  = "chiton.txt"
//	policy = "weighted"
//	goal   = [rows - 1, cols - 1]
//	params = { tile = 5 }
//
// Cells can only be resolved once the grid is known, so loading happens in
// two steps. Load returns a Draft carrying the input path, the policy name and
// the params. Draft.Bind then resolves cells against the grid size. HCL
// expressions see the variables rows and cols; YAML cells may be negative to
// count from the far edge, so [-1, -1] is the bottom-right cell.
package config
