package page

import (
	"bytes"
	"html/template"
)

var shellTemplate = template.Must(template.New("shell").Parse(`<!doctype html>
<html lang="en">
  <head>
    <meta charset="utf-8" />
    <meta name="viewport" content="width=device-width, initial-scale=1" />
    <title>{{.Title}}</title>
    <link rel="stylesheet" href="/static/app.css" />
  </head>
  <body>
    <div id="app">{{.Body}}</div>
  </body>
</html>
`))

// renderShell wraps already-serialized body markup in the document shell.
// bodyHTML must come from the render package, which escapes user data during
// serialization.
func renderShell(title string, bodyHTML string) (string, error) {
	var buf bytes.Buffer
	err := shellTemplate.Execute(&buf, map[string]any{
		"Title": title,
		"Body":  template.HTML(bodyHTML),
	})
	if err != nil {
		return "", err
	}
	return buf.String(), nil
}

// AppCSS is the dashboard stylesheet, served at /static/app.css and written
// alongside exported HTML.
const AppCSS = `
:root{
  --bg: #0b0c10;
  --panel: #111217;
  --text: #e8eaf0;
  --muted: #a6adbb;
  --line: rgba(255,255,255,0.08);
  --accent: #64748b;
  --sans: ui-sans-serif, system-ui, -apple-system, Segoe UI, Roboto, Helvetica, Arial, sans-serif;
}
*{box-sizing:border-box}
body{
  margin:0;
  font-family:var(--sans);
  background:var(--bg);
  color:var(--text);
}
.container{max-width:860px; margin:0 auto; padding:32px 20px 60px}
.header{margin-bottom:18px}
.title{margin:0; font-size:28px; letter-spacing:0.2px}
.panel{
  background:var(--panel);
  border:1px solid var(--line);
  border-left:3px solid var(--accent);
  border-radius:12px;
  margin-bottom:16px;
  overflow:hidden;
}
.panelTitle{
  margin:0;
  padding:14px 16px;
  font-size:14px;
  letter-spacing:0.4px;
  text-transform:uppercase;
  color:var(--muted);
  border-bottom:1px solid var(--line);
}
.links{display:flex; flex-direction:column; gap:4px; padding:8px}
.link-row{display:flex; align-items:center; padding:6px 8px; border-radius:8px}
.link-row:hover{background:rgba(255,255,255,0.04)}
.link-ref{
  flex:1;
  min-width:0;
  color:var(--text);
  text-decoration:none;
  overflow:hidden;
  text-overflow:ellipsis;
  white-space:nowrap;
}
.link-ref:hover{text-decoration:underline}
.link-delete-form{flex:none; margin-left:8px}
.link-delete{
  flex:none;
  margin-left:8px;
  width:26px;
  height:26px;
  border:none;
  border-radius:6px;
  background:rgba(255,255,255,0.06);
  color:var(--muted);
  cursor:pointer;
}
.link-delete:hover{background:#e74c3c; color:#fff}
.empty{padding:16px; color:var(--muted)}
.color-slate{--accent:#64748b}
.color-gray{--accent:#6b7280}
.color-blue{--accent:#3b82f6}
.color-navy{--accent:#1e3a8a}
.color-indigo{--accent:#6366f1}
.color-sky{--accent:#0ea5e9}
.color-cyan{--accent:#06b6d4}
.color-teal{--accent:#14b8a6}
.color-mint{--accent:#6ee7b7}
.color-green{--accent:#22c55e}
.color-lime{--accent:#84cc16}
.color-amber{--accent:#f59e0b}
.color-gold{--accent:#eab308}
.color-orange{--accent:#f97316}
.color-red{--accent:#ef4444}
.color-pink{--accent:#ec4899}
.color-purple{--accent:#a855f7}
.color-coffee{--accent:#92613a}
`
