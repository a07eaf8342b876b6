package templates

// Template tokens.
const (
	TokenTitle       = "{{TITLE}}"
	TokenSiteTitle   = "{{SITE_TITLE}}"
	TokenCategory    = "{{CATEGORY}}"
	TokenDate        = "{{DATE}}"
	TokenYear        = "{{YEAR}}"
	TokenReadingTime = "{{READING_TIME}}"
	TokenContent     = "{{CONTENT}}"
	TokenBaseURL     = "{{BASE_URL}}"
	TokenAuthor      = "{{AUTHOR}}"
	TokenDescription = "{{DESCRIPTION}}"
)

// Index markers.
const (
	MarkerLatestPosts = "<!-- LATEST_POSTS -->"
	MarkerArchiveList = "<!-- ARCHIVE_LIST -->"
)

// DefaultCategory is shown for posts without a category.
const DefaultCategory = "General"
