package model

import "time"

type Customer struct {
	ID         string
	Name       string
	Email      *string // nullable: cleared by defect injection in the raw variant
	Age        *int    // nullable
	SignupDate time.Time
	Country    string
	Segment    Segment
}
