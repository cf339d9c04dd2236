// Package statustests contains the status check smoke tests themselves and their supporting API.
//
// Infrastructure that is not specific to this backend, such as test contexts, results, and
// sending HTTP requests with a timeout, is in the lower-level framework package.
package statustests
