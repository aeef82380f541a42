package settings

import (
	"encoding/json"
	"fmt"

	"github.com/gosuri/uitable"
)

// RegistryTable lists every known key with its environment variable, the
// effective value and the default.
func RegistryTable(s *Settings) *uitable.Table {
	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.MaxColWidth = 50
	tbl.AddRow("JSON KEY", "ENV VAR", "CURRENT", "DEFAULT", "DESCRIPTION")
	for _, c := range Registry {
		tbl.AddRow(c.Key, EnvVar(c.Key), fmt.Sprint(s.Get(c.Key)), fmt.Sprint(c.Default), c.Description)
	}
	return tbl
}

// EnvTable maps environment variables to their JSON keys.
func EnvTable() *uitable.Table {
	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.AddRow("ENV VAR", "JSON KEY")
	for _, c := range Registry {
		tbl.AddRow(EnvVar(c.Key), c.Key)
	}
	return tbl
}

// Lookup returns the effective value of a registered key.
func Lookup(s *Settings, key string) (any, bool) {
	for _, c := range Registry {
		if c.Key == key {
			return s.Get(key), true
		}
	}
	return nil, false
}

// DefaultsJSON renders a settings.json holding every default.
func DefaultsJSON() ([]byte, error) {
	out := map[string]any{}
	for _, c := range Registry {
		out[c.Key] = c.Default
	}
	return json.MarshalIndent(out, "", "  ")
}
