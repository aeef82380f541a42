package apool

import (
	"errors"
	"maps"
)

// APool interns attributes so that the attribute set of a text node can be
// stored and compared as a short attribute string ("*0*3").
type APool struct {
	NumToAttrib map[int]Attribute `json:"-"`
	AttribToNum map[Attribute]int `json:"-"`
	NextNum     int               `json:"nextNum"`
}

func NewAPool() *APool {
	return &APool{
		NumToAttrib: make(map[int]Attribute),
		AttribToNum: make(map[Attribute]int),
		NextNum:     0,
	}
}

// PutAttrib returns the number of attrib, adding it to the pool unless
// dontAddIfAbsent is set. Returns -1 for an absent attribute that was not added.
func (a *APool) PutAttrib(attrib Attribute, dontAddIfAbsent bool) int {
	if val, ok := a.AttribToNum[attrib]; ok {
		return val
	}

	if dontAddIfAbsent {
		return -1
	}

	num := a.NextNum
	a.NextNum++
	a.AttribToNum[attrib] = num
	a.NumToAttrib[num] = attrib

	return num
}

func (a *APool) GetAttrib(num int) (*Attribute, error) {
	pair, ok := a.NumToAttrib[num]
	if !ok {
		return nil, errors.New("attrib not found")
	}
	return &pair, nil
}

func (a *APool) Clone() *APool {
	return &APool{
		NumToAttrib: maps.Clone(a.NumToAttrib),
		AttribToNum: maps.Clone(a.AttribToNum),
		NextNum:     a.NextNum,
	}
}

// Check asserts that the data in the pool is consistent.
func (a *APool) Check() error {
	if a.NextNum < 0 {
		return errors.New("nextNum is negative")
	}
	if len(a.AttribToNum) != a.NextNum {
		return errors.New("nextNum is not equal to the number of attributes")
	}
	if len(a.NumToAttrib) != a.NextNum {
		return errors.New("nextNum is not equal to the number of attributes")
	}

	for i := 0; i < a.NextNum; i++ {
		attrib, ok := a.NumToAttrib[i]
		if !ok {
			return errors.New("attribute not found")
		}
		if a.AttribToNum[attrib] != i {
			return errors.New("attribute number mismatch")
		}
	}
	return nil
}
