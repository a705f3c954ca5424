package config

import "math"

const (
	// Gauge canvas, in logical pixels
	CanvasWidth  = 1200
	CanvasHeight = 640

	// Button bar below the gauge
	ButtonBarHeight = 140
	ButtonWidth     = 256
	ButtonHeight    = 44
	ButtonGap       = 16
	InstructionsY   = CanvasHeight + 16
	ButtonY         = CanvasHeight + 56

	WindowWidth  = CanvasWidth
	WindowHeight = CanvasHeight + ButtonBarHeight

	// Arc layout
	CenterYOffset = 250
	ArcRadius     = 360
	ArcLineWidth  = 8
	StartAngle    = math.Pi * 5 / 4 // 225°
	EndAngle      = math.Pi * 7 / 4 // 315°

	// Scale marks
	TotalMarks        = 18
	MajorMarkInterval = 9
	MajorTickLength   = 50
	MinorTickLength   = 24
	MajorTickWidth    = 6
	MinorTickWidth    = 3
	LabelInset        = 40
	LabelFontSize     = 24

	// Needle
	NeedleExtension  = 50
	NeedleStartRatio = 0.5
	NeedleWidth      = 10

	// Spring
	SpringStrength     = 0.1
	Damping            = 0.75
	SettleDistance     = 0.1
	SettleVelocity     = 0.5
	TraceRingSize      = 240
	DefaultTicksPerSec = 60
)
