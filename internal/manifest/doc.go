// Package manifest reads and rewrites the dataset taxonomy manifest
// (data.yaml).
//
// The document is kept as a yaml.Node tree so that updating the class list
// touches only the "names" and "nc" entries; every other key, the key
// ordering, and comments survive a round trip untouched.
package manifest
