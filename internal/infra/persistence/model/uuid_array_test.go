package model

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUUIDArray_Scan(t *testing.T) {
	a := uuid.New()
	b := uuid.New()

	var arr UUIDArray
	require.NoError(t, arr.Scan("{"+a.String()+","+b.String()+"}"))
	assert.Equal(t, UUIDArray{a, b}, arr)
}

func TestUUIDArray_Scan_Empty(t *testing.T) {
	var arr UUIDArray
	require.NoError(t, arr.Scan("{}"))
	assert.NotNil(t, arr)
	assert.Empty(t, arr)
}

func TestUUIDArray_Scan_Null(t *testing.T) {
	arr := UUIDArray{uuid.New()}
	require.NoError(t, arr.Scan(nil))
	assert.Nil(t, arr)
}

func TestUUIDArray_Scan_Bytes(t *testing.T) {
	a := uuid.New()

	var arr UUIDArray
	require.NoError(t, arr.Scan([]byte("{"+a.String()+"}")))
	assert.Equal(t, UUIDArray{a}, arr)
}

func TestUUIDArray_Scan_Invalid(t *testing.T) {
	var arr UUIDArray
	assert.Error(t, arr.Scan("{not-a-uuid}"))
	assert.Error(t, arr.Scan(42))
}

func TestUUIDArray_Value(t *testing.T) {
	a := uuid.New()
	b := uuid.New()

	v, err := UUIDArray{a, b}.Value()
	require.NoError(t, err)
	assert.Equal(t, "{"+a.String()+","+b.String()+"}", v)

	v, err = UUIDArray(nil).Value()
	require.NoError(t, err)
	assert.Nil(t, v)
}
