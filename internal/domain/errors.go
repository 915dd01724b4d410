package domain

import "errors"

var (
	ErrRecordNotFound = errors.New("kurs record not found")
	ErrRecordExists   = errors.New("kurs record already exists")
)
