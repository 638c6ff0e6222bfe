package domain

import "errors"

var (
	ErrEmptySequence           = errors.New("protein sequence is empty")
	ErrInvalidAlphabet         = errors.New("invalid protein sequence format")
	ErrInvalidGoal             = errors.New("optimization goal must be one of: stability, activity, expression")
	ErrProjectNameRequired     = errors.New("project name is required")
	ErrProjectNameConflict     = errors.New("project with this name already exists for the owner")
	ErrProjectNotFound         = errors.New("project not found")
	ErrSequenceNotFound        = errors.New("sequence not found")
	ErrResultNotFound          = errors.New("optimization result not found")
	ErrProjectSequenceMismatch = errors.New("sequence does not belong to the given project")
)
