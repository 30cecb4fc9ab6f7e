package report

import (
	"bytes"
	"fmt"
	"html"
	"html/template"
	"strings"

	"reading-quiz/internal/domain"
	"reading-quiz/internal/qg"
)

var attemptTemplate = template.Must(template.New("attempt").Parse(`<html>
  <body style="font-family: Arial, sans-serif; color:#111;">
    <style>.highlight { background: #fff3a3; }</style>
    <h2>{{.Title}}</h2>
    {{- if .Quiz}}
    <p><strong>Quiz:</strong> {{.Quiz}}</p>
    {{- end}}
    {{- if .Student}}
    <p><strong>Student:</strong> {{.Student}}</p>
    {{- end}}
    <h3>Passage</h3>
    <p>{{.Passage}}</p>
    <h3>Questions &amp; Answers</h3>
    <table border="1" cellpadding="6" cellspacing="0" style="border-collapse:collapse;">
      <thead>
        <tr style="background:#f4f6f8;">
          <th>#</th><th>Type</th><th>Prompt</th><th>Student</th><th>Correct</th><th>Result</th><th>Evidence</th>
        </tr>
      </thead>
      <tbody>
        {{- range .Rows}}
        <tr>
          <td style="vertical-align:top;">{{.Index}}</td>
          <td>{{.QType}}</td>
          <td>{{.Prompt}}</td>
          <td>{{.Student}}</td>
          <td>{{.Correct}}</td>
          <td>{{.Verdict}}</td>
          <td>{{.Evidence}}</td>
        </tr>
        {{- end}}
      </tbody>
    </table>
    <p>{{.Summary}}</p>
  </body>
</html>
`))

type htmlRow struct {
	Index    int
	QType    string
	Prompt   string
	Student  string
	Correct  string
	Verdict  string
	Evidence template.HTML
}

type htmlReport struct {
	Title   string
	Quiz    string
	Student string
	Passage string
	Rows    []htmlRow
	Summary string
}

// AttemptHTML renders the attempt report as an HTML page with the correct
// answer highlighted inside each evidence sentence.
func AttemptHTML(quiz *domain.Quiz, attempt *domain.Attempt) (string, error) {
	data := htmlReport{
		Title:   reportTitle,
		Quiz:    quiz.Title,
		Student: attempt.StudentName,
		Passage: strings.TrimSpace(quiz.Passage),
		Summary: summary(attempt),
	}
	for _, r := range rows(quiz, attempt) {
		data.Rows = append(data.Rows, htmlRow{
			Index:    r.Index,
			QType:    string(r.Question.QType),
			Prompt:   r.Question.Prompt,
			Student:  r.studentAnswer(),
			Correct:  r.Question.CorrectAnswer,
			Verdict:  r.verdict(),
			Evidence: highlightEscaped(r.Question.Evidence, r.Question.CorrectAnswer),
		})
	}

	var buf bytes.Buffer
	if err := attemptTemplate.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("failed to render attempt report: %w", err)
	}
	return buf.String(), nil
}

// highlightEscaped escapes both strings before inserting the highlight
// markup, so the result is safe to embed unescaped.
func highlightEscaped(sentence, span string) template.HTML {
	return template.HTML(qg.HighlightSpan(html.EscapeString(sentence), html.EscapeString(span)))
}
