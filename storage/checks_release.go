//go:build !boundeddebug

package storage

const debugChecks = false
