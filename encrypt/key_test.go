package encrypt

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/tuplecodec/codec"
	"github.com/arloliu/tuplecodec/keystore"
)

func TestGenerateSecretKey(t *testing.T) {
	k1, err := GenerateSecretKey()
	require.NoError(t, err)
	require.Equal(t, generatedKeySize, k1.Len())

	k2, err := GenerateSecretKey()
	require.NoError(t, err)
	require.False(t, k1.Equal(k2))
}

func TestNewSecretKey_CopiesMaterial(t *testing.T) {
	material := []byte("0123456789abcdef")
	key := NewSecretKey(material)
	same := NewSecretKey([]byte("0123456789abcdef"))

	material[0] = 'X'
	require.True(t, key.Equal(same))
}

func TestSecretKey_StringRedacted(t *testing.T) {
	key := NewSecretKey([]byte("super-secret-key"))

	require.Equal(t, "SecretKey(AES, 16 bytes)", key.String())
	require.NotContains(t, key.String(), "super-secret")
}

// writeKeystore writes a keystore holding one AES-128 key and returns its
// path, the property bundle pointing at it, and the key material.
func writeKeystore(t *testing.T) (Properties, []byte) {
	t.Helper()

	material := []byte("0123456789abcdef")

	store := keystore.New()
	require.NoError(t, store.SetKey("tuples", "key-password", material))

	path := filepath.Join(t.TempDir(), "pipeline.sks")
	require.NoError(t, store.Save(path, "store-password"))

	props := Properties{
		PropKeystoreName:     path,
		PropKeystoreType:     keystore.Format,
		PropKeystorePassword: "store-password",
		PropKeyAlias:         "tuples",
		PropKeyPassword:      "key-password",
	}

	return props, material
}

func TestKeystoreSource_Resolve(t *testing.T) {
	props, material := writeKeystore(t)

	key, err := Keystore(props).resolve()
	require.NoError(t, err)
	require.True(t, key.Equal(NewSecretKey(material)))
}

func TestKeystoreSource_MissingProperty(t *testing.T) {
	for _, missing := range requiredProps {
		t.Run(missing, func(t *testing.T) {
			props, _ := writeKeystore(t)
			delete(props, missing)

			_, err := New[string](codec.NewStringCodec(), Keystore(props))
			require.ErrorIs(t, err, ErrMissingConfig)
			require.ErrorContains(t, err, missing)
		})
	}
}

func TestKeystoreSource_EmptyProperty(t *testing.T) {
	props, _ := writeKeystore(t)
	props[PropKeyAlias] = ""

	_, err := New[string](codec.NewStringCodec(), Keystore(props))
	require.ErrorIs(t, err, ErrMissingConfig)
}

func TestKeystoreSource_UnresolvableAlias(t *testing.T) {
	props, _ := writeKeystore(t)
	props[PropKeyAlias] = "no-such-alias"

	_, err := New[string](codec.NewStringCodec(), Keystore(props))
	require.ErrorIs(t, err, ErrKeyLoad)
}

func TestKeystoreSource_WrongStorePassword(t *testing.T) {
	props, _ := writeKeystore(t)
	props[PropKeystorePassword] = "wrong"

	_, err := New[string](codec.NewStringCodec(), Keystore(props))
	require.ErrorIs(t, err, ErrKeyLoad)
}

func TestKeystoreSource_WrongKeyPassword(t *testing.T) {
	props, _ := writeKeystore(t)
	props[PropKeyPassword] = "wrong"

	_, err := New[string](codec.NewStringCodec(), Keystore(props))
	require.ErrorIs(t, err, ErrKeyLoad)
}

func TestKeystoreSource_MissingFile(t *testing.T) {
	props, _ := writeKeystore(t)
	props[PropKeystoreName] = filepath.Join(t.TempDir(), "absent.sks")

	_, err := New[string](codec.NewStringCodec(), Keystore(props))
	require.ErrorIs(t, err, ErrKeyLoad)
}

func TestKeystoreSource_EndToEnd(t *testing.T) {
	props, _ := writeKeystore(t)

	sender, err := New[string](codec.NewStringCodec(), Keystore(props))
	require.NoError(t, err)
	receiver, err := New[string](codec.NewStringCodec(), Keystore(props))
	require.NoError(t, err)

	data, err := sender.Serialize("Lorem Ipsum")
	require.NoError(t, err)

	got, err := receiver.Deserialize(data)
	require.NoError(t, err)
	require.Equal(t, "Lorem Ipsum", got)
}

func TestLoadProperties(t *testing.T) {
	path := filepath.Join(t.TempDir(), "keystore.properties")
	content := "keystore.name=/etc/pipeline/keys.sks\n" +
		"keystore.type=sks1\n" +
		"keystore.password=store-password\n" +
		"keystore.key.alias=tuples\n" +
		"keystore.key.password=key-password\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	props, err := LoadProperties(path)
	require.NoError(t, err)
	require.NoError(t, props.validate())
	require.Equal(t, "/etc/pipeline/keys.sks", props[PropKeystoreName])
	require.Equal(t, "tuples", props[PropKeyAlias])
}

func TestLoadProperties_MissingFile(t *testing.T) {
	_, err := LoadProperties(filepath.Join(t.TempDir(), "absent.properties"))
	require.Error(t, err)
}
