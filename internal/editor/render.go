package editor

import (
	"bytes"
	"html/template"
	"strings"

	"resume-builder/internal/resumes"
)

// FormatOptions are the cosmetic knobs of the preview pane.
type FormatOptions struct {
	TextSizePt     float64
	LineHeight     float64
	SectionSpacing float64 // rem
}

// DefaultFormatOptions mirrors the editor's initial formatting state.
func DefaultFormatOptions() FormatOptions {
	return FormatOptions{
		TextSizePt:     11,
		LineHeight:     1.5,
		SectionSpacing: 1.5,
	}
}

type previewData struct {
	Doc      resumes.Resume
	Opts     FormatOptions
	Contacts []string
}

// Render produces the preview HTML for a document. The projection (hidden
// filtering) is applied here so the rendered view always matches what a
// save would not destroy.
func Render(doc resumes.Resume, opts FormatOptions) (string, error) {
	projected := Project(doc)

	var contacts []string
	for _, v := range []string{
		projected.PersonalInfo.Email,
		projected.PersonalInfo.Phone,
		projected.PersonalInfo.Address,
		projected.PersonalInfo.Linkedin,
		projected.PersonalInfo.Website,
	} {
		if strings.TrimSpace(v) != "" {
			contacts = append(contacts, v)
		}
	}

	var buf bytes.Buffer
	err := previewTemplate.Execute(&buf, previewData{
		Doc:      projected,
		Opts:     opts,
		Contacts: contacts,
	})
	if err != nil {
		return "", err
	}
	return buf.String(), nil
}

var previewTemplate = template.Must(template.New("preview").Parse(`<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<style>
  body { font-family: Georgia, serif; font-size: {{.Opts.TextSizePt}}pt; line-height: {{.Opts.LineHeight}}; color: #1f2937; margin: 0; }
  #resume-preview { padding: 0.75in; }
  h1 { color: {{.Doc.ThemeColor}}; margin: 0 0 0.25rem 0; }
  h2 { color: {{.Doc.ThemeColor}}; border-bottom: 1px solid {{.Doc.ThemeColor}}; margin: {{.Opts.SectionSpacing}}rem 0 0.5rem 0; }
  .contacts { color: #4b5563; margin-bottom: 0.5rem; }
  .entry { margin-bottom: 0.5rem; }
  .entry-head { font-weight: bold; }
  .entry-dates { color: #6b7280; font-style: italic; }
  .skills span { display: inline-block; margin-right: 0.75rem; }
</style>
</head>
<body>
<div id="resume-preview">
  <h1>{{.Doc.PersonalInfo.FullName}}</h1>
  {{if .Contacts}}<div class="contacts">{{range $i, $c := .Contacts}}{{if $i}} &middot; {{end}}{{$c}}{{end}}</div>{{end}}

  {{if .Doc.Summary}}
  <h2>Summary</h2>
  <p>{{.Doc.Summary}}</p>
  {{end}}

  {{if .Doc.Experience}}
  <h2>Experience</h2>
  {{range .Doc.Experience}}
  <div class="entry">
    <div class="entry-head">{{.Position}}{{if .Company}} &mdash; {{.Company}}{{end}}</div>
    <div class="entry-dates">{{.StartDate}}{{if or .EndDate .Current}} &ndash; {{if .Current}}Present{{else}}{{.EndDate}}{{end}}{{end}}</div>
    {{if .Description}}<p>{{.Description}}</p>{{end}}
  </div>
  {{end}}
  {{end}}

  {{if .Doc.Education}}
  <h2>Education</h2>
  {{range .Doc.Education}}
  <div class="entry">
    <div class="entry-head">{{.Degree}}{{if .FieldOfStudy}}, {{.FieldOfStudy}}{{end}}{{if .Institution}} &mdash; {{.Institution}}{{end}}</div>
    <div class="entry-dates">{{.StartDate}}{{if or .EndDate .Current}} &ndash; {{if .Current}}Present{{else}}{{.EndDate}}{{end}}{{end}}</div>
    {{if .Description}}<p>{{.Description}}</p>{{end}}
  </div>
  {{end}}
  {{end}}

  {{if .Doc.Skills}}
  <h2>Skills</h2>
  <div class="skills">
  {{range .Doc.Skills}}<span>{{.Name}}{{if .Level}} ({{.Level}}){{end}}</span>{{end}}
  </div>
  {{end}}

  {{if .Doc.Projects}}
  <h2>Projects</h2>
  {{range .Doc.Projects}}
  <div class="entry">
    <div class="entry-head">{{.Name}}{{if .Technologies}} &mdash; {{.Technologies}}{{end}}</div>
    {{if .Description}}<p>{{.Description}}</p>{{end}}
    {{if .Link}}<div>{{.Link}}</div>{{end}}
  </div>
  {{end}}
  {{end}}

  {{if .Doc.Responsibilities}}
  <h2>Responsibilities</h2>
  {{range .Doc.Responsibilities}}
  <div class="entry">
    <div class="entry-head">{{.Role}}{{if .Organization}} &mdash; {{.Organization}}{{end}}</div>
    <div class="entry-dates">{{.StartDate}}{{if .EndDate}} &ndash; {{.EndDate}}{{end}}</div>
    {{if .Description}}<p>{{.Description}}</p>{{end}}
  </div>
  {{end}}
  {{end}}

  {{if .Doc.Achievements}}
  <h2>Achievements</h2>
  {{range .Doc.Achievements}}
  <div class="entry">
    <div class="entry-head">{{.Title}}</div>
    {{if .Date}}<div class="entry-dates">{{.Date}}</div>{{end}}
    {{if .Description}}<p>{{.Description}}</p>{{end}}
  </div>
  {{end}}
  {{end}}
</div>
</body>
</html>
`))
