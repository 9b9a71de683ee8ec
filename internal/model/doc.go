package model

// Package model defines the persisted diary document: daily entries with
// meals, water, weight, sleep, energy and notes, and weekly meal plans keyed
// by the Monday of their ISO week. Documents are copy-on-write snapshots.
