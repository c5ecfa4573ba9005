// Package generation defines the contract for producing study pack content
// and ships the deterministic template fallback. It abstracts the details of
// external LLM integration, allowing the application to generate study packs
// without coupling to a specific provider.
package generation
