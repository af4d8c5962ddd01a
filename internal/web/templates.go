package web

import (
	"bytes"
	"html/template"
	"net/http"
)

type templates struct {
	index *template.Template
}

func loadTemplates() *templates {
	index := template.Must(template.New("index").Parse(indexTemplate))
	return &templates{index: index}
}

func renderTemplate(t *template.Template, data any) []byte {
	var buf bytes.Buffer
	_ = t.Execute(&buf, data)
	return buf.Bytes()
}

// spectatorIndex serves a minimal read-only landing page that polls the
// reference /game/{id}/board route, keeping spec.md section 1's "HTTP
// polling, no push transport" design note visible without adding one.
func (h *handlers) spectatorIndex(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(renderTemplate(h.tpl.index, nil))
}

const indexTemplate = `<!doctype html>
<html>
<head><meta charset="utf-8"><title>Battleship</title></head>
<body>
<h1>Battleship</h1>
<p>Create a game with <code>POST /game</code>, then poll
<code>GET /game/{id}/board</code> to watch it play out.</p>
<script>
async function poll(id) {
  const res = await fetch("/game/" + id + "/board");
  const view = await res.json();
  document.getElementById("state").textContent = JSON.stringify(view, null, 2);
}
window.watch = function(id) {
  poll(id);
  setInterval(() => poll(id), 2000);
};
</script>
<pre id="state"></pre>
</body>
</html>`
