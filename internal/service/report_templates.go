package service

import "html/template"

// pageTemplate is the printable report: a self-contained document with a
// stylesheet and a print button. Substituted values pass through
// html/template's contextual escaping, so &, <, >, " and ' in note fields
// are rendered inert.
var pageTemplate = template.Must(template.New("page").Parse(`<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<meta name="viewport" content="width=device-width, initial-scale=1">
<title>Attendance Note — {{.CaseTitle}}</title>
<link href="https://cdn.jsdelivr.net/npm/bootstrap@5.3.3/dist/css/bootstrap.min.css" rel="stylesheet">
<style>
  body { background: #f4f5f7; font-family: Georgia, 'Times New Roman', serif; }
  .report { max-width: 760px; margin: 2rem auto; background: #fff; padding: 2.5rem 3rem; box-shadow: 0 1px 4px rgba(0,0,0,.12); }
  .report h1 { font-size: 1.5rem; border-bottom: 2px solid #1a2f4b; padding-bottom: .5rem; }
  .meta th { width: 12rem; font-weight: 600; color: #1a2f4b; }
  .section-label { text-transform: uppercase; letter-spacing: .08em; font-size: .8rem; color: #6b7280; margin-top: 1.5rem; }
  .body-text { white-space: pre-wrap; }
  .footer { margin-top: 2.5rem; border-top: 1px solid #d1d5db; padding-top: 1rem; font-size: .85rem; color: #4b5563; }
  .toolbar { max-width: 760px; margin: 1rem auto 0; text-align: right; }
  @media print { .toolbar { display: none; } .report { box-shadow: none; margin: 0; } }
</style>
</head>
<body>
<div class="toolbar">
  <button class="btn btn-sm btn-outline-secondary" onclick="window.print()">Print</button>
</div>
<div class="report">
  <h1>{{.CaseTitle}}</h1>
  <p class="text-muted">Attendance Note &mdash; {{.Status}}</p>
  <table class="table table-sm meta">
    <tbody>
      <tr><th>Client</th><td>{{.ClientFull}}</td></tr>
      <tr><th>Court</th><td>{{.CourtName}}</td></tr>
      <tr><th>Hearing date</th><td>{{.CourtDate}}</td></tr>
      {{if .HearingType}}<tr><th>Hearing type</th><td>{{.HearingType}}</td></tr>{{end}}
      {{if .Coram}}<tr><th>Coram</th><td>{{.Coram}}</td></tr>{{end}}
      {{if .Contra}}<tr><th>Contra</th><td>{{.Contra}}</td></tr>{{end}}
      {{if .Instructed}}<tr><th>Instructed by</th><td>{{.Instructed}}</td></tr>{{end}}
      {{if .NextStepsDate}}<tr><th>Next steps</th><td>{{.NextStepsDate}}</td></tr>{{end}}
      {{if .Outcome}}<tr><th>Outcome</th><td>{{.Outcome}}</td></tr>{{end}}
      {{if .Remand}}<tr><th>Remand</th><td>{{.Remand}}</td></tr>{{end}}
    </tbody>
  </table>
  {{if .Advice}}
  <p class="section-label">Advice</p>
  <p class="body-text">{{.Advice}}</p>
  {{end}}
  {{if .Closing}}
  <p class="section-label">Closing</p>
  <p class="body-text">{{.Closing}}</p>
  {{end}}
  {{if and .IncludeExpenses .Expenses}}
  <p class="section-label">Expenses</p>
  <table class="table table-sm">
    <tbody>
      {{range .Expenses}}<tr><td>{{.Type}}</td><td class="text-end">{{.Amount}}</td></tr>
      {{end}}
      {{if .Total}}<tr><th>Total</th><th class="text-end">{{.Total}}</th></tr>{{end}}
    </tbody>
  </table>
  {{end}}
  <div class="footer">
    {{if .Counsel}}<div>{{.Counsel}}{{if .CounselMobile}} &middot; {{.CounselMobile}}{{end}}</div>{{end}}
    <div>{{.ChambersName}}{{if .ChambersAddr}} &middot; {{.ChambersAddr}}{{end}}</div>
    <div>{{.ChambersEmail}} &middot; {{.ChambersPhone}}</div>
    <div class="text-muted">Generated {{.GeneratedAt}}</div>
  </div>
</div>
</body>
</html>
`))

// emailTemplate renders the same content with inline styles only. Email
// clients strip stylesheets and scripts, so nothing external is referenced.
var emailTemplate = template.Must(template.New("email").Parse(`<div style="font-family: Georgia, 'Times New Roman', serif; color: #111827; max-width: 680px; margin: 0 auto;">
  <h1 style="font-size: 20px; border-bottom: 2px solid #1a2f4b; padding-bottom: 8px;">{{.CaseTitle}}</h1>
  <p style="color: #6b7280; margin-top: 4px;">Attendance Note &mdash; {{.Status}}</p>
  <table cellpadding="4" cellspacing="0" style="font-size: 14px;">
    <tr><td style="font-weight: bold; color: #1a2f4b; padding-right: 16px;">Client</td><td>{{.ClientFull}}</td></tr>
    <tr><td style="font-weight: bold; color: #1a2f4b; padding-right: 16px;">Court</td><td>{{.CourtName}}</td></tr>
    <tr><td style="font-weight: bold; color: #1a2f4b; padding-right: 16px;">Hearing date</td><td>{{.CourtDate}}</td></tr>
    {{if .HearingType}}<tr><td style="font-weight: bold; color: #1a2f4b; padding-right: 16px;">Hearing type</td><td>{{.HearingType}}</td></tr>{{end}}
    {{if .Coram}}<tr><td style="font-weight: bold; color: #1a2f4b; padding-right: 16px;">Coram</td><td>{{.Coram}}</td></tr>{{end}}
    {{if .Contra}}<tr><td style="font-weight: bold; color: #1a2f4b; padding-right: 16px;">Contra</td><td>{{.Contra}}</td></tr>{{end}}
    {{if .Instructed}}<tr><td style="font-weight: bold; color: #1a2f4b; padding-right: 16px;">Instructed by</td><td>{{.Instructed}}</td></tr>{{end}}
    {{if .NextStepsDate}}<tr><td style="font-weight: bold; color: #1a2f4b; padding-right: 16px;">Next steps</td><td>{{.NextStepsDate}}</td></tr>{{end}}
    {{if .Outcome}}<tr><td style="font-weight: bold; color: #1a2f4b; padding-right: 16px;">Outcome</td><td>{{.Outcome}}</td></tr>{{end}}
    {{if .Remand}}<tr><td style="font-weight: bold; color: #1a2f4b; padding-right: 16px;">Remand</td><td>{{.Remand}}</td></tr>{{end}}
  </table>
  {{if .Advice}}
  <p style="text-transform: uppercase; letter-spacing: 1px; font-size: 12px; color: #6b7280; margin-bottom: 4px;">Advice</p>
  <p style="white-space: pre-wrap; font-size: 14px;">{{.Advice}}</p>
  {{end}}
  {{if .Closing}}
  <p style="text-transform: uppercase; letter-spacing: 1px; font-size: 12px; color: #6b7280; margin-bottom: 4px;">Closing</p>
  <p style="white-space: pre-wrap; font-size: 14px;">{{.Closing}}</p>
  {{end}}
  {{if and .IncludeExpenses .Expenses}}
  <p style="text-transform: uppercase; letter-spacing: 1px; font-size: 12px; color: #6b7280; margin-bottom: 4px;">Expenses</p>
  <table cellpadding="4" cellspacing="0" style="font-size: 14px;">
    {{range .Expenses}}<tr><td style="padding-right: 24px;">{{.Type}}</td><td align="right">{{.Amount}}</td></tr>
    {{end}}
    {{if .Total}}<tr><td style="font-weight: bold; padding-right: 24px;">Total</td><td align="right" style="font-weight: bold;">{{.Total}}</td></tr>{{end}}
  </table>
  {{end}}
  <div style="margin-top: 32px; border-top: 1px solid #d1d5db; padding-top: 12px; font-size: 13px; color: #4b5563;">
    {{if .Counsel}}<div>{{.Counsel}}</div>{{end}}
    <div>{{.ChambersName}}{{if .ChambersAddr}} &middot; {{.ChambersAddr}}{{end}}</div>
    <div>{{.ChambersEmail}} &middot; {{.ChambersPhone}}</div>
  </div>
</div>
`))
