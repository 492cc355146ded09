package fallback

import (
	"fmt"
	"html"
	"strings"
	"time"

	"projectassistant/backend/models"
)

const maxPortfolioProjects = 5

var defaultSkills = []string{"HTML/CSS", "JavaScript", "Python"}

const sampleProjectCard = `<div class="project-card">
  <div class="project-header"><h3>Smart Project Assistant</h3></div>
  <div class="project-content">
    <p>A comprehensive project management system with AI-powered features for students.</p>
    <p class="tech">Go, REST API, JavaScript, HTML/CSS</p>
  </div>
</div>`

type portfolioView struct {
	Name     string
	College  string
	Branch   string
	Semester string
	Year     string
	Bio      string
	Email    string
	Github   string
	Linkedin string
	Skills   string
	Projects string
}

// view applies defaults and escapes every user-supplied value.
func view(in models.PortfolioInput) portfolioView {
	e := func(v, def string) string {
		if strings.TrimSpace(v) == "" {
			v = def
		}
		return html.EscapeString(v)
	}
	return portfolioView{
		Name:     e(in.Name, "Student"),
		College:  e(in.Education.College, "University"),
		Branch:   e(in.Education.Branch, "Computer Science"),
		Semester: e(in.Education.Semester, "Current"),
		Year:     e(in.Education.Year, "2024"),
		Bio:      e(in.Contact.Bio, "Passionate student developer"),
		Email:    e(in.Contact.Email, "Not provided"),
		Github:   e(in.Contact.Github, "Not provided"),
		Linkedin: e(in.Contact.Linkedin, "Not provided"),
		Skills:   skillsHTML(in.Skills),
		Projects: projectsHTML(in.Projects),
	}
}

func skillsHTML(skills []string) string {
	var kept []string
	for _, s := range skills {
		if strings.TrimSpace(s) != "" {
			kept = append(kept, s)
		}
	}
	if len(kept) == 0 {
		kept = defaultSkills
	}
	var b strings.Builder
	for _, s := range kept {
		fmt.Fprintf(&b, "<span class=\"skill-tag\">%s</span>\n", html.EscapeString(s))
	}
	return b.String()
}

func projectsHTML(projects []models.PortfolioProject) string {
	if len(projects) == 0 {
		return sampleProjectCard
	}
	if len(projects) > maxPortfolioProjects {
		projects = projects[:maxPortfolioProjects]
	}
	var b strings.Builder
	for i, p := range projects {
		name := p.Name
		if name == "" {
			name = fmt.Sprintf("Project %d", i+1)
		}
		desc := p.Description
		if desc == "" {
			desc = "A completed project."
		}
		tech := p.Technologies.Join()
		if tech == "" {
			tech = "Various technologies"
		}
		fmt.Fprintf(&b, `<div class="project-card">
  <div class="project-header"><h3>%s</h3></div>
  <div class="project-content">
    <p>%s</p>
    <p class="tech">%s</p>
  </div>
</div>
`, html.EscapeString(name), html.EscapeString(desc), html.EscapeString(tech))
	}
	return b.String()
}

const portfolioCSS = `* { margin: 0; padding: 0; box-sizing: border-box; }
body { font-family: 'Segoe UI', Tahoma, Geneva, Verdana, sans-serif; line-height: 1.6; color: #333; background: #f8f9fa; }
.container { max-width: 1200px; margin: 0 auto; padding: 20px; }
.header { background: linear-gradient(135deg, #667eea 0%, #764ba2 100%); color: #fff; padding: 80px 0; text-align: center; }
.header h1 { font-size: 3rem; margin-bottom: 10px; }
.section { padding: 60px 0; }
.section h2 { color: #667eea; margin-bottom: 30px; text-align: center; }
.skills-container { display: flex; flex-wrap: wrap; gap: 10px; justify-content: center; }
.skill-tag { background: #667eea; color: #fff; padding: 8px 16px; border-radius: 20px; }
.projects-grid { display: grid; grid-template-columns: repeat(auto-fit, minmax(300px, 1fr)); gap: 30px; }
.project-card { background: #fff; border-radius: 10px; overflow: hidden; box-shadow: 0 5px 15px rgba(0,0,0,.1); transition: transform .3s; }
.project-card:hover { transform: translateY(-5px); }
.project-header { background: #667eea; color: #fff; padding: 20px; }
.project-content { padding: 20px; }
.tech { color: #764ba2; font-weight: 600; }
.contact-info { text-align: center; }
footer { background: #333; color: #fff; text-align: center; padding: 20px; }
@media (max-width: 768px) { .header h1 { font-size: 2rem; } .projects-grid { grid-template-columns: 1fr; } }
@media print { .header { background: none; color: #000; } .project-card { box-shadow: none; border: 1px solid #ddd; } }`

// Portfolio renders a complete standalone HTML page from the submitted data.
func Portfolio(in models.PortfolioInput, now time.Time) string {
	v := view(in)
	body := fmt.Sprintf(`<header class="header">
  <div class="container">
    <h1>%[1]s</h1>
    <p>%[2]s Student at %[3]s</p>
    <p>%[4]s</p>
  </div>
</header>
<section class="section" id="about">
  <div class="container">
    <h2>About Me</h2>
    <p>%[5]s</p>
  </div>
</section>
<section class="section" id="skills">
  <div class="container">
    <h2>Skills</h2>
    <div class="skills-container">
%[6]s    </div>
  </div>
</section>
<section class="section" id="projects">
  <div class="container">
    <h2>Projects</h2>
    <div class="projects-grid">
%[7]s
    </div>
  </div>
</section>
<section class="section" id="contact">
  <div class="container contact-info">
    <h2>Contact</h2>
    <p><i class="fas fa-envelope"></i> %[8]s</p>
    <p><i class="fab fa-github"></i> %[9]s</p>
    <p><i class="fab fa-linkedin"></i> %[10]s</p>
  </div>
</section>
<footer>
  <p>&copy; %[11]d %[1]s. Generated by Smart Project Assistant v%[12]s</p>
</footer>`,
		v.Name, v.Branch, v.College, v.Semester, v.Bio, v.Skills, v.Projects,
		v.Email, v.Github, v.Linkedin, now.Year(), Version)

	return document(v.Name, portfolioCSS, body)
}

// RenderTemplate fills a stored template's [[token]] placeholders and wraps
// the result into a full document with the template CSS inlined.
func RenderTemplate(htmlBody, css string, in models.PortfolioInput) string {
	v := view(in)
	r := strings.NewReplacer(
		"[[name]]", v.Name,
		"[[education.college]]", v.College,
		"[[education.branch]]", v.Branch,
		"[[education.year]]", v.Year,
		"[[contact.bio]]", v.Bio,
		"[[contact.email]]", v.Email,
		"[[contact.github]]", v.Github,
		"[[contact.linkedin]]", v.Linkedin,
		"[[skills]]", v.Skills,
		"[[projects]]", v.Projects,
	)
	return document(v.Name, css, r.Replace(htmlBody))
}

func document(title, css, body string) string {
	return fmt.Sprintf(`<!DOCTYPE html>
<html lang="en">
<head>
  <meta charset="UTF-8">
  <meta name="viewport" content="width=device-width, initial-scale=1.0">
  <title>%s - Portfolio</title>
  <link rel="stylesheet" href="https://cdnjs.cloudflare.com/ajax/libs/font-awesome/6.0.0/css/all.min.css">
  <style>
%s
  </style>
</head>
<body>
%s
</body>
</html>`, title, css, body)
}
