// Package endian provides byte order utilities for TeaFile decoding.
//
// This package extends Go's standard encoding/binary package by combining
// ByteOrder and AppendByteOrder interfaces into a unified EndianEngine interface.
// Decoders read through the ByteOrder half; test fixtures and header re-encoding
// use the AppendByteOrder half.
//
// # Basic Usage
//
// TeaFiles prefer big-endian and fall back to little-endian when the magic
// number only matches in that order:
//
//	engine := endian.GetBigEndianEngine()
//	if magic := engine.Uint64(data[:8]); magic != format.MagicNumber {
//	    engine = endian.Opposite(engine)
//	}
//
// # Thread Safety
//
// All functions and methods in this package are safe for concurrent use.
// The returned EndianEngine instances are immutable and stateless.
package endian

import "encoding/binary"

// EndianEngine combines ByteOrder and AppendByteOrder interfaces from encoding/binary
// into a single interface for convenient byte order operations.
//
// This interface is satisfied by binary.LittleEndian and binary.BigEndian from
// the standard library.
type EndianEngine interface {
	binary.ByteOrder
	binary.AppendByteOrder
}

// GetLittleEndianEngine returns the little-endian engine.
func GetLittleEndianEngine() EndianEngine {
	return binary.LittleEndian
}

// GetBigEndianEngine returns the big-endian engine.
func GetBigEndianEngine() EndianEngine {
	return binary.BigEndian
}

// IsBigEndian reports whether engine reads and writes big-endian data.
func IsBigEndian(engine EndianEngine) bool {
	return engine == binary.BigEndian
}

// Opposite returns the engine with the other byte order.
func Opposite(engine EndianEngine) EndianEngine {
	if IsBigEndian(engine) {
		return binary.LittleEndian
	}

	return binary.BigEndian
}

// Name returns "big-endian" or "little-endian" for the given engine.
func Name(engine EndianEngine) string {
	if IsBigEndian(engine) {
		return "big-endian"
	}

	return "little-endian"
}
