// Package parser reads the two iRODS client environment file formats into
// flat maps of property values: the legacy whitespace or '=' separated
// .irodsEnv file and the irods_environment.json document.
//
// Both parsers report malformed input with errors matching
// properties.ErrParse and unopenable files with errors matching
// properties.ErrFileNotFound.
package parser
