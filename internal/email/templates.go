package email

import (
	"bytes"
	"fmt"
	"html/template"
)

const subjectAssignmentFmt = "New %s assigned: %s"

var assignmentTemplate = template.Must(template.New("assignment.html").Parse(`<!DOCTYPE html>
<html>
<head><meta charset="utf-8"><title>{{.Title}}</title></head>
<body style="font-family: Arial, sans-serif; color: #2d2d2d;">
  <h2>{{.Heading}}</h2>
  <p>Hi {{.RepName}},</p>
  <p>{{if .Automatic}}Based on your territory, the {{.EntityType}} <strong>{{.EntityName}}</strong> has been assigned to you.{{else}}The {{.EntityType}} <strong>{{.EntityName}}</strong> has been assigned to you.{{end}}</p>
  {{if .CTAURL}}<p><a href="{{.CTAURL}}">{{.CTALabel}}</a></p>{{end}}
</body>
</html>`))

type baseEmailData struct {
	Title    string
	Heading  string
	CTALabel string
	CTAURL   string
}

type assignmentEmailData struct {
	baseEmailData
	RepName    string
	EntityType string
	EntityName string
	Automatic  bool
}

func renderAssignment(a Assignment) (subject, html string, err error) {
	var buf bytes.Buffer
	err = assignmentTemplate.Execute(&buf, assignmentEmailData{
		baseEmailData: baseEmailData{
			Title:    "New assignment",
			Heading:  "You have a new " + a.EntityType,
			CTALabel: "Open in CRM",
			CTAURL:   a.EntityURL,
		},
		RepName:    a.RepName,
		EntityType: a.EntityType,
		EntityName: a.EntityName,
		Automatic:  a.Automatic,
	})
	if err != nil {
		return "", "", fmt.Errorf("render assignment email: %w", err)
	}
	return fmt.Sprintf(subjectAssignmentFmt, a.EntityType, a.EntityName), buf.String(), nil
}
