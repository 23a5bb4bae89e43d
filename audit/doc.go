// Package audit compares script header metadata against an Excel inventory.
//
// An audit runs in three stages:
//
//  1. Scan: each configured folder is listed (non-recursively) and every
//     script of the folder's type has its header metadata extracted --
//     comment headers for Python scripts, the embedded Header string
//     constant for Java sources.
//
//  2. Compare: each scanned script is matched to its inventory row by
//     filename (case-insensitive). Configured column pairs are checked for
//     missing or mismatching values on either side, a filename similarity
//     percentage is computed, and a [Status] is derived. Inventory rows
//     with no corresponding file become [StatusFileNotFound] entries.
//
//  3. Report: the entries are written as one sheet of an Excel workbook,
//     fixed comparison columns first, then the sorted union of every
//     extracted field.
//
// Configuration follows the Config/Flags pattern: defaults from
// [NewConfig], optional YAML file via [Config.Resolve], CLI flags via
// [Config.RegisterFlags]. [ConfigSchema] describes the YAML file as a JSON
// Schema.
package audit
