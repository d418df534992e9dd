// Package core defines the shared language of the schemawatch system.
//
// This package contains:
//   - Domain entities (ChangeRecord, ChangeSet, CandidateFile, ImpactMatch)
//   - Presentation contracts (Severity, Message, Sink)
//   - Collaborator interfaces (FileProvider)
//   - The error taxonomy (ConfigurationError, ParseError, IOError)
//
// The Golden Rule: pkg/core imports ONLY stdlib.
// All other packages depend on core, not the reverse.
package core
