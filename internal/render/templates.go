package render

import "html/template"

var funcMap = template.FuncMap{
	"md": markdownHTML,
	"optionLabel": func(i int) string {
		return string(rune('A' + i))
	},
}

var pageTmpl = template.Must(template.New("page").Funcs(funcMap).Parse(pageHTML))

var indexTmpl = template.Must(template.New("index").Funcs(funcMap).Parse(indexHTML))

const pageHTML = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="UTF-8">
<meta name="viewport" content="width=device-width, initial-scale=1.0">
<title>{{.Icon}} {{.Title}}</title>
<style>
* { margin: 0; padding: 0; box-sizing: border-box; }
body { font-family: 'Segoe UI', Tahoma, Geneva, Verdana, sans-serif; line-height: 1.6; color: #333; background: linear-gradient(135deg, #667eea 0%, #764ba2 100%); min-height: 100vh; }
.container { max-width: 1000px; margin: 0 auto; padding: 20px; }
.header { background: rgba(255,255,255,0.95); border-radius: 20px; padding: 30px; margin-bottom: 24px; text-align: center; box-shadow: 0 8px 32px rgba(0,0,0,0.1); }
.header h1 { font-size: 2.2em; color: #2c3e50; }
.stats { color: #7f8c8d; margin-top: 8px; }
.topic-nav { background: rgba(255,255,255,0.95); border-radius: 16px; padding: 20px; margin-bottom: 24px; }
.topic-nav a { display: block; color: #4c51bf; text-decoration: none; padding: 4px 0; }
.topic-nav .subtopic-link { padding-left: 24px; }
.topic-section { background: rgba(255,255,255,0.95); border-radius: 16px; padding: 24px; margin-bottom: 24px; box-shadow: 0 8px 32px rgba(0,0,0,0.1); }
.topic-section h2 { color: #2c3e50; margin-bottom: 12px; }
.topic-section.subtopic { margin-left: 24px; }
.placeholder { background: #fee2e2; border-left: 4px solid #dc2626; padding: 14px; border-radius: 8px; color: #7f1d1d; }
.concept-card { background: #f8fafc; border-left: 4px solid #667eea; border-radius: 8px; padding: 14px; margin: 10px 0; }
.concept-card h4 { color: #1f2937; }
.concept-btn { background: #667eea; color: white; border: none; border-radius: 6px; padding: 5px 10px; cursor: pointer; margin-top: 6px; }
.mcq-card { background: #f8fafc; border-radius: 8px; padding: 14px; margin: 10px 0; }
.mcq-options { list-style: none; margin-top: 8px; }
.mcq-option { padding: 8px 12px; margin: 4px 0; border: 1px solid #e2e8f0; border-radius: 6px; cursor: pointer; }
.mcq-option.correct { background: #dcfce7; border-color: #16a34a; }
.mcq-option.wrong { background: #fee2e2; border-color: #dc2626; }
.option-label { font-weight: 600; margin-right: 8px; }
.feedback { margin-top: 8px; font-weight: 600; }
.qa-card { background: #f8fafc; border-radius: 8px; padding: 14px; margin: 10px 0; }
.qa-marks { float: right; color: #6b7280; font-size: 0.9em; }
.importance { display: inline-block; border-radius: 6px; padding: 2px 8px; font-size: 0.75em; font-weight: 700; margin-left: 8px; }
.importance.high { background: #fecaca; color: #991b1b; }
.importance.medium { background: #fef3c7; color: #92400e; }
.importance.low { background: #e0e7ff; color: #3730a3; }
.toggle-btn { background: #4c51bf; color: white; border: none; border-radius: 6px; padding: 6px 12px; cursor: pointer; margin-top: 8px; }
.qa-answer { display: none; margin-top: 10px; padding-top: 10px; border-top: 1px dashed #cbd5e1; }
.qa-answer.open { display: block; }
.back-link { color: rgba(255,255,255,0.9); text-decoration: none; display: inline-block; margin-bottom: 12px; }
</style>
</head>
<body>
<div class="container">
<a class="back-link" href="{{.IndexHref}}">← All chapters</a>
<div class="header">
<h1>{{.Icon}} {{.Title}}</h1>
<p class="stats">📚 {{.Stats.Concepts}} Concepts • 📝 {{.Stats.MCQs}} MCQs • 💭 {{.Stats.Subjective}} Subjective Qs</p>
<p class="stats">Source: {{.SourcePDF}}</p>
</div>

{{if .Topics}}
<nav class="topic-nav">
{{range .Topics}}
<a href="#{{.Anchor}}">📖 {{.Title}}</a>
{{range .Children}}<a class="subtopic-link" href="#{{.Anchor}}">└─ {{.Title}}</a>
{{end}}
{{end}}
</nav>
{{end}}

{{range .Topics}}{{template "topic" .}}{{end}}
</div>
<script>
function selectOption(el, correct) {
  var card = el.closest('.mcq-card');
  if (card.dataset.done) { return; }
  card.dataset.done = "1";
  var options = card.querySelectorAll('.mcq-option');
  options[correct].classList.add('correct');
  var picked = Array.prototype.indexOf.call(options, el);
  var feedback = card.querySelector('.feedback');
  if (picked === correct) {
    feedback.textContent = '✅ Correct!';
  } else {
    el.classList.add('wrong');
    feedback.textContent = '❌ Not quite. The correct answer is ' + String.fromCharCode(65 + correct) + '.';
  }
}
function toggleAnswer(btn) {
  var answer = btn.nextElementSibling;
  answer.classList.toggle('open');
  btn.textContent = answer.classList.contains('open') ? 'Hide Answer' : 'Show Answer';
}
function readText(text) {
  if (!window.speechSynthesis) { return; }
  window.speechSynthesis.cancel();
  window.speechSynthesis.speak(new SpeechSynthesisUtterance(text));
}
</script>
</body>
</html>
{{define "topic"}}
<section class="topic-section{{if gt .Depth 1}} subtopic{{end}}" id="{{.Anchor}}">
<h2>{{if gt .Depth 1}}📝{{else}}📖{{end}} {{.Title}}</h2>
{{if .Failed}}
<div class="placeholder">⚠️ Content generation failed for this topic ({{.FailReason}}). The source pages are still part of this chapter; try reprocessing with --force.</div>
{{else}}
{{range $i, $c := .Concepts}}
<div class="concept-card">
<h4>{{$c.Title}}</h4>
<div>{{md $c.Description}}</div>
<button class="concept-btn" onclick="readText({{printf "%s. %s" $c.Title $c.Description}})">🔊 Read</button>
</div>
{{end}}
{{range .MCQs}}
<div class="mcq-card">
<div><strong>Q{{.ID}}:</strong> {{.Question}} <span class="qa-marks">1 Mark</span></div>
<ul class="mcq-options">
{{$correct := .Correct}}
{{range $i, $opt := .Options}}<li class="mcq-option" onclick="selectOption(this, {{$correct}})"><span class="option-label">{{optionLabel $i}}.</span>{{$opt}}</li>
{{end}}
</ul>
<div class="feedback"></div>
</div>
{{end}}
{{range .QA}}
<div class="qa-card">
<div><strong>Q{{.ID}}:</strong> {{.Question}}<span class="importance {{.Importance}}">{{.Importance}}</span> <span class="qa-marks">{{.Marks}}</span></div>
<button class="toggle-btn" onclick="toggleAnswer(this)">Show Answer</button>
<div class="qa-answer"><strong>Answer:</strong> {{md .Answer}}</div>
</div>
{{end}}
{{end}}
{{range .Children}}{{template "topic" .}}{{end}}
</section>
{{end}}`

const indexHTML = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="UTF-8">
<meta name="viewport" content="width=device-width, initial-scale=1.0">
<link rel="icon" href="data:image/svg+xml,<svg xmlns='http://www.w3.org/2000/svg' viewBox='0 0 100 100'><text y='.9em' font-size='90'>📚</text></svg>">
<title>Learning System</title>
<style>
* { margin: 0; padding: 0; box-sizing: border-box; }
body { font-family: 'Segoe UI', Tahoma, Geneva, Verdana, sans-serif; color: #333; background: linear-gradient(135deg, #667eea 0%, #764ba2 100%); min-height: 100vh; }
.container { max-width: 900px; margin: 0 auto; padding: 20px; }
.header { background: rgba(255,255,255,0.95); border-radius: 20px; padding: 36px; margin-bottom: 24px; text-align: center; box-shadow: 0 8px 32px rgba(0,0,0,0.1); }
.header h1 { font-size: 2.4em; color: #2c3e50; }
.header p { color: #7f8c8d; margin-top: 6px; }
.cards { display: grid; gap: 14px; }
.pdf-card { display: flex; align-items: center; background: rgba(255,255,255,0.95); border-radius: 14px; padding: 18px; text-decoration: none; color: inherit; box-shadow: 0 4px 16px rgba(0,0,0,0.08); }
.pdf-card:hover { transform: translateY(-2px); }
.pdf-icon { font-size: 2em; margin-right: 16px; }
.pdf-info h3 { color: #1f2937; }
.pdf-stats { color: #6b7280; font-size: 0.9em; }
.pdf-original { color: #9ca3af; font-size: 0.8em; }
.pdf-arrow { margin-left: auto; color: #4c51bf; font-size: 1.4em; }
</style>
</head>
<body>
<div class="container">
<div class="header">
<h1>📚 Learning System</h1>
<p>{{len .Entries}} chapters processed</p>
</div>
<div class="cards">
{{range .Entries}}
<a class="pdf-card" href="{{.File}}">
<span class="pdf-icon">{{.Icon}}</span>
<span class="pdf-info">
<h3>{{.Title}}</h3>
<p class="pdf-stats">📚 {{.Stats.Concepts}} Concepts • 📝 {{.Stats.MCQs}} MCQs • 💭 {{.Stats.Subjective}} Subjective Qs</p>
<p class="pdf-original">Original: {{.SourcePDF}}</p>
</span>
<span class="pdf-arrow">→</span>
</a>
{{end}}
</div>
</div>
</body>
</html>`
