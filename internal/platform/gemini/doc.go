// Package gemini provides an implementation of the generation.Generator
// interface that uses Google's Gemini API for generating study packs.
//
// This package is an infrastructure adapter in the hexagonal architecture,
// connecting the application's domain logic to the external generative
// service. The response is treated as untrusted input: it is parsed as a
// JSON-constrained payload and every field is re-validated, with malformed
// fields degrading to empty sequences rather than failing the whole call.
//
// The generator makes exactly one attempt per request. Failure recovery
// (falling back to template content) belongs to the orchestrating service,
// so retrying here would only delay the response the fallback is about to
// produce anyway.
package gemini
