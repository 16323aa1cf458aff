// Package samples provides fully populated model values shared by the tests
// of the codec packages.
//
// Every float is exactly representable with six decimals, so that values
// survive the text encoding unchanged.
package samples

import (
	ubiart "github.com/Kriskras99/ferris-dancing-sub001"
)

func header(id uint32) ubiart.ClipHeader {
	return ubiart.ClipHeader{
		ID:        0x1000 + id,
		TrackID:   0x80000000 | id,
		IsActive:  id%2 == 0,
		StartTime: -12 * int32(id),
		Duration:  48 + id,
	}
}

// Actors returns a list of target actors, one qualified and one not.
func Actors() []ubiart.TargetActor {
	return []ubiart.TargetActor{
		{Qualifiers: []string{"..", "Dancers"}, Name: "Coach1"},
		{Name: "Coach2"},
	}
}

// Constant returns a constant curve.
func Constant() ubiart.BezierCurve {
	return ubiart.CurveConstant{Value: -0.75}
}

// Linear returns a two-point curve with distinct values in every pair.
func Linear() ubiart.BezierCurve {
	return ubiart.CurveLinear{
		Value0:     ubiart.Vec2{X: 0, Y: 1.5},
		NormalOut0: ubiart.Vec2{X: 0.25, Y: 1.75},
		NormalIn1:  ubiart.Vec2{X: 0.75, Y: -0.5},
		Value1:     ubiart.Vec2{X: 1, Y: -1},
	}
}

// Multi returns a curve of three keys.
func Multi() ubiart.BezierCurve {
	return ubiart.CurveMulti{Keys: []ubiart.CurveKey{
		{Value: ubiart.Vec2{X: 0, Y: 0}, NormalIn: ubiart.Vec2{X: -0.125, Y: 0}, NormalOut: ubiart.Vec2{X: 0.125, Y: 0.5}},
		{Value: ubiart.Vec2{X: 0.5, Y: 2}, NormalIn: ubiart.Vec2{X: 0.375, Y: 2}, NormalOut: ubiart.Vec2{X: 0.625, Y: 2}},
		{Value: ubiart.Vec2{X: 1, Y: -3.25}, NormalIn: ubiart.Vec2{X: 0.875, Y: -3}, NormalOut: ubiart.Vec2{X: 1.125, Y: -3.5}},
	}}
}

// Clips returns one clip of every kind that has a layout, in the order of
// ubiart.ClipKinds. Every field holds a non-zero value.
func Clips() []ubiart.Clip {
	return []ubiart.Clip{
		&ubiart.AlphaClip{ClipHeader: header(1), ActorPaths: Actors(), Curve: Multi()},
		&ubiart.ColorClip{ClipHeader: header(2), ActorPaths: Actors(), CurveRed: Constant(), CurveGreen: Linear(), CurveBlue: Multi()},
		&ubiart.MotionClip{
			ClipHeader:     header(3),
			ClassifierPath: "world/maps/rasputin/timeline/moves/rasputin_intro.msm",
			GoldMove:       true,
			CoachID:        2,
			MoveType:       1,
			Color:          ubiart.Color{R: 1, G: 0.25, B: 0.5, A: 0.75},
		},
		&ubiart.PictogramClip{ClipHeader: header(4), PictoPath: "world/maps/rasputin/timeline/pictos/arms_up.png", AtlIndex: 7, CoachCount: 4},
		&ubiart.TapeReferenceClip{ClipHeader: header(5), Path: "world/maps/rasputin/timeline/rasputin_tml_dance.tape", Loop: true},
		&ubiart.SpawnActorClip{
			ClipHeader:    header(6),
			ActorPath:     "world/_common/fx/confetti.act",
			ActorName:     "Confetti",
			SpawnPosition: ubiart.Vec3{X: -1.5, Y: 2.25, Z: 0.5},
			ParentActor:   ubiart.TargetActor{Qualifiers: []string{".."}, Name: "Stage"},
		},
		&ubiart.GoldEffectClip{ClipHeader: header(7), EffectType: 3},
		&ubiart.KaraokeClip{
			ClipHeader:         header(8),
			Pitch:              61.5,
			Lyrics:             "Ra-",
			IsEndOfLine:        true,
			ContentType:        1,
			StartTimeTolerance: 4,
			EndTimeTolerance:   5,
			SemitoneTolerance:  0.5,
		},
		&ubiart.SoundSetClip{
			ClipHeader:           header(9),
			SoundSetPath:         "world/maps/rasputin/audio/rasputin_fx.tpl",
			SoundChannel:         -1,
			StartOffset:          12,
			StopsOnEnd:           true,
			AccountedForDuration: true,
		},
		&ubiart.HideUserInterfaceClip{ClipHeader: header(10), ActorPaths: Actors(), EventType: 18, CustomParam: "lyrics"},
		&ubiart.GameplayEventClip{ClipHeader: header(11), ActorPaths: Actors(), EventType: 2, CustomParam: "photo"},
		&ubiart.VibrationClip{
			ClipHeader:        header(12),
			VibrationFilePath: "world/_common/vibration/pulse.vib",
			Loop:              true,
			DeviceSide:        2,
			PlayerID:          -1,
			Context:           1,
			StartTimeOffset:   0.25,
			Modulation:        0.75,
		},
		&ubiart.TranslationClip{ClipHeader: header(13), ActorPaths: Actors(), CurveX: Linear(), CurveY: Multi(), CurveZ: Constant()},
		&ubiart.RotationClip{ClipHeader: header(14), ActorPaths: Actors(), CurveX: Multi(), CurveY: Constant(), CurveZ: Linear()},
		&ubiart.SizeClip{ClipHeader: header(15), ActorPaths: Actors(), CurveX: Constant(), CurveY: Multi()},
		&ubiart.ProportionClip{ClipHeader: header(16), ActorPaths: Actors(), CurveX: Multi(), CurveY: Linear()},
		&ubiart.TextClip{ClipHeader: header(17), ActorPaths: Actors(), LocID: 4242, Text: "Get ready"},
		&ubiart.TextAreaSizeClip{
			ClipHeader:     header(18),
			ActorPaths:     Actors(),
			CurveMaxWidth:  Constant(),
			CurveMaxHeight: Linear(),
			CurveAreaX:     Multi(),
			CurveAreaY:     Linear(),
		},
		&ubiart.MaterialGraphicDiffuseAlphaClip{ClipHeader: header(19), ActorPaths: Actors(), Curve: Linear(), LayerIdx: 1, UVModifierIdx: 2},
		&ubiart.MaterialGraphicDiffuseColorClip{
			ClipHeader:    header(20),
			ActorPaths:    Actors(),
			CurveRed:      Multi(),
			CurveGreen:    Constant(),
			CurveBlue:     Linear(),
			LayerIdx:      2,
			UVModifierIdx: 3,
		},
		&ubiart.MaterialGraphicUVTranslationClip{ClipHeader: header(21), ActorPaths: Actors(), CurveU: Linear(), CurveV: Constant(), LayerIdx: 3, UVModifierIdx: 1},
		&ubiart.MaterialGraphicUVRotationClip{ClipHeader: header(22), ActorPaths: Actors(), CurveAngle: Multi(), LayerIdx: 4, UVModifierIdx: 5},
		&ubiart.TapeLauncherClip{ClipHeader: header(23), Action: 1, TapeChoice: 2, TapeLabels: []string{"intro", "chorus", "outro"}},
		&ubiart.FXClip{ClipHeader: header(24), ActorPaths: Actors(), FXName: "sparkles", KillParticlesOnEnd: true},
		&ubiart.SlotClip{ClipHeader: header(25), Bpm: 126.5, Signature: "4/4", Guid: "4d1b6a62-7c1e-4b64-9d5c-0f0c2f5d3e11"},
		&ubiart.CommunityDancerClip{ClipHeader: header(26), DancerCountryCode: "FR", DancerAvatarID: 1234, DancerName: "Anna"},
	}
}
