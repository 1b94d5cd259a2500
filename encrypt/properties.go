package encrypt

import (
	"fmt"

	"github.com/joho/godotenv"
)

// Property names for keystore-backed key provisioning. All five are
// required.
const (
	// PropKeystoreName is the path of the keystore file.
	PropKeystoreName = "keystore.name"

	// PropKeystoreType is the keystore format identifier. The property must
	// be present for compatibility with existing deployment descriptors, but
	// the format itself is fixed (see keystore.Format).
	PropKeystoreType = "keystore.type"

	// PropKeystorePassword is the password protecting the keystore file.
	PropKeystorePassword = "keystore.password"

	// PropKeyAlias is the alias of the key entry to load.
	PropKeyAlias = "keystore.key.alias"

	// PropKeyPassword is the password protecting the key entry.
	PropKeyPassword = "keystore.key.password"
)

// requiredProps are validated in order, so the first missing property is the
// one reported.
var requiredProps = []string{
	PropKeystoreName,
	PropKeystoreType,
	PropKeystorePassword,
	PropKeyAlias,
	PropKeyPassword,
}

// Properties is a keystore configuration bundle: a flat string mapping in
// java-properties style.
type Properties map[string]string

// LoadProperties reads a key=value properties file into a Properties bundle.
func LoadProperties(path string) (Properties, error) {
	props, err := godotenv.Read(path)
	if err != nil {
		return nil, fmt.Errorf("reading properties %q: %w", path, err)
	}

	return Properties(props), nil
}

// validate checks that every required property is present and non-empty.
func (p Properties) validate() error {
	for _, name := range requiredProps {
		if p[name] == "" {
			return fmt.Errorf("%w: %s", ErrMissingConfig, name)
		}
	}

	return nil
}
