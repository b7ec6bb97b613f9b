package model

import "fmt"

// Signature is the text every HWP 5.0 FileHeader stream starts with.
const Signature = "HWP Document File"

// Version is an HWP format version, stored as 0xMMnnPPrr.
type Version struct {
	Major    uint8
	Minor    uint8
	Build    uint8
	Revision uint8
}

// ParseVersion splits a packed version word.
func ParseVersion(v uint32) Version {
	return Version{
		Major:    uint8(v >> 24),
		Minor:    uint8(v >> 16),
		Build:    uint8(v >> 8),
		Revision: uint8(v),
	}
}

// Uint32 packs the version back into its stored form.
func (v Version) Uint32() uint32 {
	return uint32(v.Major)<<24 | uint32(v.Minor)<<16 | uint32(v.Build)<<8 | uint32(v.Revision)
}

// AtLeast reports whether v is the same as or newer than major.minor.build.revision.
func (v Version) AtLeast(major, minor, build, revision uint8) bool {
	return v.Uint32() >= Version{major, minor, build, revision}.Uint32()
}

// String returns the dotted form, e.g. "5.0.3.4".
func (v Version) String() string {
	return fmt.Sprintf("%d.%d.%d.%d", v.Major, v.Minor, v.Build, v.Revision)
}

// FileHeader is the decoded FileHeader stream.
type FileHeader struct {
	Signature      string
	Version        Version
	Properties     uint32
	License        uint32
	EncryptVersion uint32
	KOGLCountry    uint8
}

func (h FileHeader) prop(bit uint) bool { return h.Properties&(1<<bit) != 0 }

// Compressed reports whether storage streams are deflated.
func (h FileHeader) Compressed() bool { return h.prop(0) }

// Encrypted reports whether the document is password protected.
func (h FileHeader) Encrypted() bool { return h.prop(1) }

// Distributed reports whether the body is stored encrypted under ViewText.
func (h FileHeader) Distributed() bool { return h.prop(2) }

// HasScript reports whether the document stores scripts.
func (h FileHeader) HasScript() bool { return h.prop(3) }

// DRM reports DRM protection.
func (h FileHeader) DRM() bool { return h.prop(4) }

// HasXMLTemplate reports an XMLTemplate storage.
func (h FileHeader) HasXMLTemplate() bool { return h.prop(5) }

// HasHistory reports stored document history.
func (h FileHeader) HasHistory() bool { return h.prop(6) }

// Signed reports an electronic signature.
func (h FileHeader) Signed() bool { return h.prop(7) }

// CertificateEncrypted reports public-key certificate encryption.
func (h FileHeader) CertificateEncrypted() bool { return h.prop(8) }

// CertificateDRM reports certificate DRM.
func (h FileHeader) CertificateDRM() bool { return h.prop(10) }

// CCL reports a Creative Commons licensed document.
func (h FileHeader) CCL() bool { return h.prop(11) }

// MobileOptimized reports a document saved for mobile viewers.
func (h FileHeader) MobileOptimized() bool { return h.prop(12) }

// PrivacySecured reports a document with personal information protection.
func (h FileHeader) PrivacySecured() bool { return h.prop(13) }

// TrackChanges reports change tracking.
func (h FileHeader) TrackChanges() bool { return h.prop(14) }

// KOGL reports a Korea Open Government License document.
func (h FileHeader) KOGL() bool { return h.prop(15) }

// CopyRestricted reports the license bit forbidding copies.
func (h FileHeader) CopyRestricted() bool { return h.License&0x2 != 0 }
