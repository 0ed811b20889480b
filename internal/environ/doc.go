// Package environ resolves which environment variables to inspect and reads
// their raw values from a Source. It enforces the unset-variable policy and
// rejects values that are not valid UTF-8 text.
package environ
