// Package engine groups the selection engine's building blocks.
//
// The engine is built on several sub-packages:
//
//   - buffer: line-based document storage and position arithmetic
//   - column: conversion between character offsets and visual columns
//   - cursor: selections, the Caret and Character behaviors and shift policies
//   - tracking: the preferred-column tracker that keeps vertical motions sticky
//
// Motions themselves live in the motion package and operate on these types
// without holding any state of their own.
package engine
