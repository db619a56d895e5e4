package parser

// ModifierSet is a bitmask of the modifiers that can appear before a
// declaration. It mirrors the flag layout the class file format uses so
// that a later pass can hand the mask straight to an access_flags field
// without translation.
type ModifierSet uint32

const (
	ModPublic ModifierSet = 1 << iota
	ModPrivate
	ModProtected
	ModStatic
	ModFinal
	ModSynchronized
	ModVolatile
	ModTransient
	ModNative
	ModInterface
	ModAbstract
	ModStrictfp
	ModSynthetic
	ModAnnotation
	ModEnum
	ModMandated
	ModDefault  // interface method with a body, or annotation element default
	ModVarargs  // last formal parameter declared with `...`
	ModDeprecated
	ModEnumImpl // enum constant that supplied a class body
)

func (m ModifierSet) Has(flag ModifierSet) bool { return m&flag != 0 }

func (m ModifierSet) With(flag ModifierSet) ModifierSet { return m | flag }

// enumConstantMods is the fixed modifier set Java assigns to every enum
// constant: public, static, final, and the enum-specific access flag.
const enumConstantMods = ModPublic | ModStatic | ModFinal | ModEnum
