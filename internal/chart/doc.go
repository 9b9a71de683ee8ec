package chart

// Package chart computes the 30-day weight trend: linear scales from
// (date, weight) onto a fixed logical drawing area, axis ticks, the polyline
// path, and nearest-point hit testing for the hover tooltip. It has no UI
// dependencies; widgets scale the logical area to their own size.
