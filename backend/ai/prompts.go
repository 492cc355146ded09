package ai

var languageInstructions = map[string]string{
	"c":          "Include proper header files, main function, and comments. Show memory management if needed.",
	"python":     "Include error handling, docstrings, and examples.",
	"javascript": "Include ES6+ features, error handling, and browser/Node.js compatibility.",
	"java":       "Include proper class structure, error handling, and comments.",
	"cpp":        "Include proper includes, namespaces, and memory management.",
	"html":       "Include semantic HTML5, CSS integration, and comments.",
	"sql":        "Include proper syntax, error handling, and examples.",
}

const ideasPrompt = `As a project assistant, suggest %d practical %s project ideas for %s level college students.

For each idea, provide as JSON with these fields:
1. name: Project title
2. description: Brief overview (2-3 sentences)
3. features: List 3-5 key features
4. skills: List required skills
5. timeline: Estimated weeks
6. difficulty: Easy/Medium/Hard
7. resources: List of learning resources (YouTube tutorials, documentation links)

Example format:
{
  "ideas": [
    {
      "name": "Task Manager",
      "description": "A web app to manage daily tasks",
      "features": ["User auth", "CRUD operations", "Drag-drop"],
      "skills": ["HTML", "CSS", "JavaScript", "Python"],
      "timeline": "4-6 weeks",
      "difficulty": "Easy",
      "resources": ["https://youtube.com/task-manager-tutorial"]
    }
  ]
}`

const docsPrompt = `Generate comprehensive project documentation for:

%s

Include these sections:
1. Project Overview
2. Objectives & Goals
3. Technology Stack
4. System Architecture
5. Features List
6. Installation Guide
7. Usage Instructions
8. API Documentation (if applicable)
9. Testing Strategy
10. Deployment Guide
11. Future Enhancements
12. References

Format professionally for academic submission.`

const snippetPrompt = `Generate a %s level %s code snippet for: "%s"

Requirements:
1. Clean, well-commented code
2. %s
3. Error handling where appropriate
4. Usage examples
5. Brief explanation of the code
6. Performance considerations if applicable

Return as JSON with these fields:
{
  "title": "Descriptive title",
  "code": "The complete code with comments",
  "explanation": "Brief explanation of what the code does",
  "usage_example": "Example of how to use/run the code",
  "complexity_analysis": "Time/Space complexity if applicable",
  "dependencies": "Any libraries/frameworks needed"
}`

const exercisesPrompt = `Create 5 practical skill enhancement exercises for a %s level %s student.

For each exercise, provide:
1. title: Exercise name
2. description: What to do
3. learning_objectives: What they'll learn
4. difficulty: Easy/Medium/Hard
5. estimated_time: Hours to complete
6. video_resources: Array of YouTube tutorial links (real URLs)
7. documentation_links: Array of relevant documentation
8. practice_tasks: Array of hands-on tasks
9. prerequisites: What they need to know
10. success_criteria: How to know they succeeded

Focus on practical, hands-on exercises. Include real YouTube tutorial links.
Return as a JSON object with an "exercises" array.`

const vcPrompt = `User needs help with: "%s"

Generate a practical version control guide:
1. List all relevant commands (Git, Docker, GitHub, CMD, PowerShell) one per line.
2. Put a short "# comment" line before each group of commands explaining what it does.
3. Include syntax and parameters.
4. Cover common errors and recovery steps.

Return commands and comment lines only, no prose paragraphs.`

const portfolioPrompt = `Generate a complete, professional HTML portfolio page for:

NAME: %s
COLLEGE: %s
BRANCH: %s
SEMESTER: %s

SKILLS: %s

PROJECTS:
%s

CONTACT:
Email: %s
GitHub: %s
LinkedIn: %s
Bio: %s

REQUIREMENTS:
1. Complete HTML document with doctype, head, and body
2. Modern, responsive design with CSS
3. Sections: Header, About, Skills, Projects, Contact
4. Use CSS Grid/Flexbox for layout
5. Professional color scheme (blues/purples)
6. Font Awesome icons integration
7. Print-friendly styles for PDF generation
8. Mobile responsive with media queries
9. Include CSS within style tags

Generate the COMPLETE HTML document with embedded CSS and nothing else.`

const evaluationPrompt = `Evaluate this project description: "%s"

Return a JSON object with these keys:
- score: integer 0-100 covering feasibility, technical complexity and learning value
- strengths: list of 3-5 strengths
- weaknesses: list of 3-5 areas for improvement
- missing_elements: list of missing parts
- improvement_suggestions: list of concrete improvements
- technical_recommendations: suggested stack and architecture notes
- overall_feedback: one paragraph
- estimated_timeline: expected duration`
