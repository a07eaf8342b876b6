package templates

import (
	"bytes"
	"strings"
	"text/template"

	"git.home.luguber.info/inful/blogbuilder/internal/post"
)

const latestPostTemplate = `
  <article class="post">
    <div class="meta">
      <span><strong>Date:</strong> {{ .Date }}</span>
      <span><strong>Category:</strong> {{ or .Category "` + DefaultCategory + `" }}</span>
      <span><strong>Reading Time:</strong> {{ .ReadingTime }} min</span>
      <span><strong>Status:</strong> <span style="color:var(--hot)">LATEST</span></span>
    </div>
    <h3><a href="posts/{{ .Slug }}.html">{{ .Title }}</a></h3>
    <p>{{ .Snippet }}</p>
    <p><a href="posts/{{ .Slug }}.html">Read more...</a></p>
  </article>
  `

const archiveItemTemplate = `
    <li><a href="posts/{{ .Slug }}.html">{{ .Date }} - {{ .Title }}</a></li>
  `

// text/template performs no escaping, so titles and snippets are inserted
// exactly as they appear in the post.
var (
	latestPost  = template.Must(template.New("latest").Parse(latestPostTemplate))
	archiveItem = template.Must(template.New("archive").Parse(archiveItemTemplate))
)

func renderLatest(posts []post.Post) (string, error) {
	return renderEach(latestPost, posts)
}

func renderArchive(posts []post.Post) (string, error) {
	return renderEach(archiveItem, posts)
}

func renderEach(tpl *template.Template, posts []post.Post) (string, error) {
	items := make([]string, 0, len(posts))
	var buf bytes.Buffer
	for i := range posts {
		buf.Reset()
		if err := tpl.Execute(&buf, posts[i]); err != nil {
			return "", err
		}
		items = append(items, buf.String())
	}
	return strings.Join(items, "\n"), nil
}
