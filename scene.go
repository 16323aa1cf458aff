package ubiart

// Scene is a level, menu or sub-scene: an ordered list of actors plus the
// configuration blocks of the scene.
type Scene struct {
	EngineVersion  uint32
	GridUnit       float32
	DepthSeparator uint32
	NearSeparator  Mat4
	FarSeparator   Mat4
	ViewFamily     bool

	// Actors contains the actors of the scene in physical order. Names are
	// not unique.
	Actors []SceneActor

	SceneConfigs SceneConfigs
}

// NewScene returns an empty scene with identity separators.
func NewScene() *Scene {
	return &Scene{
		NearSeparator: Identity(),
		FarSeparator:  Identity(),
	}
}

// Fields visits the attributes of the scene. Actors and configuration blocks
// are not visited.
func (s *Scene) Fields(t TextSerializer) {
	t.Uint32("ENGINE_VERSION", &s.EngineVersion)
	t.Float("GRIDUNIT", &s.GridUnit)
	t.Uint32("DEPTH_SEPARATOR", &s.DepthSeparator)
	t.Mat4("NEAR_SEPARATOR", &s.NearSeparator)
	t.Mat4("FAR_SEPARATOR", &s.FarSeparator)
	t.Bool("viewFamily", &s.ViewFamily)
}

// FirstActor returns the first actor with the given friendly name, or nil.
func (s *Scene) FirstActor(name string) SceneActor {
	for _, a := range s.Actors {
		if a.Base().UserFriendly == name {
			return a
		}
	}
	return nil
}

// LastActor returns the last actor with the given friendly name, or nil.
func (s *Scene) LastActor(name string) SceneActor {
	for i := len(s.Actors) - 1; i >= 0; i-- {
		if a := s.Actors[i]; a.Base().UserFriendly == name {
			return a
		}
	}
	return nil
}

// SubScenes returns the sub-scene actors of the scene, in order.
func (s *Scene) SubScenes() []*SubSceneActor {
	var subs []*SubSceneActor
	for _, a := range s.Actors {
		if sub, ok := a.(*SubSceneActor); ok {
			subs = append(subs, sub)
		}
	}
	return subs
}

// Walk calls fn for every actor of the scene and of its embedded sub-scenes,
// depth first. The path holds the friendly names of the enclosing sub-scene
// actors. Walking stops when fn returns false.
func (s *Scene) Walk(fn func(path []string, a SceneActor) bool) {
	s.walk(nil, fn)
}

func (s *Scene) walk(path []string, fn func([]string, SceneActor) bool) bool {
	for _, a := range s.Actors {
		if !fn(path, a) {
			return false
		}
		if sub, ok := a.(*SubSceneActor); ok && sub.Scene != nil {
			if !sub.Scene.walk(append(path[:len(path):len(path)], sub.UserFriendly), fn) {
				return false
			}
		}
	}
	return true
}

// SceneActor is an Actor or a SubSceneActor.
type SceneActor interface {
	// Base returns the fields shared by every actor.
	Base() *Actor
	// ActorKind returns the class name of the actor.
	ActorKind() string
}

// Actor is a positioned entity composed of components.
type Actor struct {
	RelativeZ        float32
	Scale            Vec2
	XFlipped         bool
	UserFriendly     string
	Pos2D            Vec2
	Angle            float32
	InstanceDataFile string

	// Lua is the path of the template the actor is instantiated from.
	Lua string

	Components []Component

	// ParentBind attaches the transform of the actor to another actor. Nil
	// if the actor is not bound.
	ParentBind *ParentBind

	Markers []string
}

func (a *Actor) Base() *Actor      { return a }
func (a *Actor) ActorKind() string { return "Actor" }

// Fields visits the fields of the actor. Components are not visited.
func (a *Actor) Fields(t TextSerializer) {
	t.Float("RELATIVEZ", &a.RelativeZ)
	t.Vec2("SCALE", &a.Scale)
	t.Bool("xFLIPPED", &a.XFlipped)
	t.String("USERFRIENDLY", &a.UserFriendly)
	t.Vec2("POS2D", &a.Pos2D)
	t.Float("ANGLE", &a.Angle)
	t.String("INSTANCEDATAFILE", &a.InstanceDataFile)
	t.String("LUA", &a.Lua)

	present := a.ParentBind != nil
	if t.Decoding() {
		a.ParentBind = new(ParentBind)
	}
	t.Optional("parentBind", "Bind", &present, a.ParentBind.Fields)
	if !present {
		a.ParentBind = nil
	}
	t.Strings("MARKERS", &a.Markers)
}

// Component returns the first component of the given kind, or nil.
func (a *Actor) Component(kind string) Component {
	for _, c := range a.Components {
		if c.ComponentKind() == kind {
			return c
		}
	}
	return nil
}

// ParentBind binds the transform of an actor to a parent actor.
type ParentBind struct {
	ParentPath       string
	TypeData         uint32
	OffsetPos        Vec3
	OffsetAngle      float32
	Type             uint32
	ScaleInheritProp uint32
	UseParentFlip    bool
	UseParentAlpha   bool
	RemoveWithParent bool
}

func (b *ParentBind) Fields(t TextSerializer) {
	t.String("parentPath", &b.ParentPath)
	t.Uint32("typeData", &b.TypeData)
	t.Vec3("offsetPos", &b.OffsetPos)
	t.Float("offsetAngle", &b.OffsetAngle)
	t.Uint32("type", &b.Type)
	t.Uint32("scaleInheritProp", &b.ScaleInheritProp)
	t.Bool("useParentFlip", &b.UseParentFlip)
	t.Bool("useParentAlpha", &b.UseParentAlpha)
	t.Bool("removeWithParent", &b.RemoveWithParent)
}

// SubSceneActor is an actor that nests another scene.
type SubSceneActor struct {
	Actor
	RelativePath  string
	EmbedScene    bool
	IsSinglePiece bool
	ZForced       bool
	DirectPicking bool
	IgnoreSave    bool
	ViewType      uint32

	// Scene is the nested scene. It is nil when the scene is not embedded.
	Scene *Scene
}

func (a *SubSceneActor) ActorKind() string { return "SubSceneActor" }

// Fields visits the fields of the actor. Components and the nested scene
// are not visited.
func (a *SubSceneActor) Fields(t TextSerializer) {
	a.Actor.Fields(t)
	t.String("RELATIVEPATH", &a.RelativePath)
	t.Bool("EMBED_SCENE", &a.EmbedScene)
	t.Bool("IS_SINGLE_PIECE", &a.IsSinglePiece)
	t.Bool("ZFORCED", &a.ZForced)
	t.Bool("DIRECT_PICKING", &a.DirectPicking)
	t.Bool("IGNORE_SAVE", &a.IgnoreSave)
	t.Enum("viewType", &a.ViewType)
}

// SceneConfigs holds the configuration blocks of a scene.
type SceneConfigs struct {
	ActiveSceneConfig uint32
	Configs           []SceneConfig
}
