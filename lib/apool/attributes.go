package apool

import (
	"errors"
	"regexp"
	"slices"
	"strconv"
	"strings"
)

var attribRegex = regexp.MustCompile(`\*([0-9a-z]+)|.`)

// DecodeAttribString splits an attribute string such as "*0*1a" into the
// attribute numbers it references.
func DecodeAttribString(s string) ([]int, error) {
	if s == "" {
		return nil, nil
	}
	var attribs []int

	for _, match := range attribRegex.FindAllStringSubmatch(s, -1) {
		if match[1] == "" {
			return nil, errors.New("invalid character in attribute string: " + match[0])
		}
		num, err := strconv.ParseInt(match[1], 36, 0)
		if err != nil {
			return nil, err
		}
		attribs = append(attribs, int(num))
	}

	return attribs, nil
}

func encodeAttribString(attribNums []int) (string, error) {
	var str strings.Builder
	for _, num := range attribNums {
		if num < 0 {
			return "", errors.New("attrib number is negative")
		}
		str.WriteString("*")
		str.WriteString(strconv.FormatInt(int64(num), 36))
	}
	return str.String(), nil
}

// AttribsFromString resolves an attribute string against the pool.
func AttribsFromString(str string, pool *APool) ([]Attribute, error) {
	attribNums, err := DecodeAttribString(str)
	if err != nil {
		return nil, err
	}
	attribs := make([]Attribute, 0, len(attribNums))
	for _, num := range attribNums {
		attrib, err := pool.GetAttrib(num)
		if err != nil {
			return nil, err
		}
		attribs = append(attribs, *attrib)
	}
	return attribs, nil
}

// AttribsToString interns attribs and encodes them sorted by key, so equal
// attribute sets always produce equal strings.
func AttribsToString(attribs []Attribute, pool *APool) (string, error) {
	sorted := slices.Clone(attribs)
	slices.SortFunc(sorted, CmpAttribute)
	nums := make([]int, 0, len(sorted))
	for _, attrib := range sorted {
		nums = append(nums, pool.PutAttrib(attrib, false))
	}
	return encodeAttribString(nums)
}
