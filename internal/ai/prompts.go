package ai

// SystemPrompts contains all system-level instructions for AI interactions
type SystemPrompts struct {
	ExtractSkills       string
	SuggestImprovements string
}

// UserPrompts contains user-level prompts with placeholders for dynamic content
type UserPrompts struct {
	ExtractSkills       string
	SuggestImprovements string
}

// DefaultSystemPrompts provides the default system instructions
var DefaultSystemPrompts = SystemPrompts{
	ExtractSkills: `You are an expert technical recruiter specializing in skill taxonomy. Your core principles are:

- Extract only genuine skills, never responsibilities, benefits, or marketing phrases
- Keep each skill short and canonical (one to three words)
- Never invent skills that are not stated or clearly implied by the text
- Cover the full range: technical skills, tools, software, analytical skills, and soft skills`,

	SuggestImprovements: `You are an expert resume reviewer with deep knowledge of applicant tracking systems. Your role is to:

- Compare a resume against a specific job description
- Identify concrete gaps and weak presentation
- Give short, actionable improvements the candidate can apply directly
- Stay honest: never advise claiming skills or experience the candidate does not have`,
}

// DefaultUserPrompts provides the default user prompt templates
var DefaultUserPrompts = UserPrompts{
	ExtractSkills: `Extract ONLY real skills from this job description.
Return ONLY skills, NOT phrases, NOT benefits, NOT responsibilities.

Include:
- Technical skills
- Analytical skills
- Soft skills
- Tools and technologies
- Software proficiency

**Job Description:**
-----
%s
-----`,

	SuggestImprovements: `Compare the resume with the job description and provide
5 to 7 short and actionable improvements.

**Resume:**
-----
%s
-----

**Job Description:**
-----
%s
-----`,
}
