package core

import "fmt"

const promptSystemMessage = "You are an expert in prompt engineering and AI-generated content."

const blogSystemMessage = "You are an AI blog writer. Generate a markdown-formatted blog post."

const reversePromptTemplate = `Read the human-written blog post below and reverse engineer a high-quality prompt
that could have been given to an AI model to produce it.

Instructions:
- Analyze the title and content of the post.
- Identify its key themes, tone, style, and structure.
- Write a detailed prompt that would lead a model to generate a similar post.
- Structure the prompt so it guides the model toward engaging, informative content.

File name: %s

Blog content:
%s

Example of a generated prompt:
"Write a detailed blog post about [TOPIC] with a professional yet engaging tone. Include an
introduction, main content with supporting arguments, and a conclusion. Use clear, concise
language with examples where necessary."

Respond with only the blog-writing prompt.`

// reversePrompt builds the user message asking the model to infer a prompt from a post
func reversePrompt(fileName, plainText string) string {
	return fmt.Sprintf(reversePromptTemplate, fileName, plainText)
}
