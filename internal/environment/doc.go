// Package environment holds the iRODS client environment: the properties
// read from ~/.irods/irods_environment.json or, when that file is absent,
// from the legacy ~/.irods/.irodsEnv file.
//
// A process normally uses the shared instance returned by [Instance] and the
// helpers [GetEnvironmentProperty] and [SetEnvironmentProperty]. Code that
// prefers explicit ownership builds its own with [New].
//
// Keys renamed since the legacy format stay readable under their canonical
// names: [Property] retries a missing key under its legacy name. Writes and
// removals always address the literal key.
package environment
