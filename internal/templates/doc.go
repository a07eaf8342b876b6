// Package templates fills the site's HTML templates.
//
// Post pages use `{{TOKEN}}` placeholders that are replaced verbatim in a
// single pass: values are inserted without HTML escaping and never scanned
// for further tokens. Unknown tokens are left untouched.
//
// The index template carries two HTML comment markers, <!-- LATEST_POSTS -->
// and <!-- ARCHIVE_LIST -->, whose first occurrences are replaced by generated
// fragments. The site-level tokens are also available in the index.
package templates
