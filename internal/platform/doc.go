// Package platform holds the host capabilities the controllers depend on:
// a global key event source, document-level style state with a
// reference-counted scroll lock, a colour-scheme signal and one-shot timers.
//
// Every capability is an interface or a small concrete type so tests can
// substitute deterministic fakes (MemoryDocument, ManualScheduler,
// StaticScheme).
package platform
