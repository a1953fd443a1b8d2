//go:build tools
// +build tools

// Package tools tracks go generate dependencies such as mockgen in go.mod.
package uniportal

import (
	_ "go.uber.org/mock/mockgen"
)
