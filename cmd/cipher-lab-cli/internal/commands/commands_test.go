//go:build unit
// +build unit

package commands

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/MGTheTrain/cipher-lab/internal/pkg/testutil"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testPassphrase = "ThisIsASecretKeyThisIsASecretKey"

// executeCommand builds a fresh command tree and runs args against it.
func executeCommand(t *testing.T, args ...string) string {
	t.Helper()

	rootCmd := &cobra.Command{Use: "cipher-lab-cli"}
	log := testutil.SetupTestLogger(t)
	require.NoError(t, InitCipherCommands(rootCmd, log))
	require.NoError(t, InitAnalysisCommands(rootCmd, log))

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	require.NoError(t, rootCmd.Execute())

	return out.String()
}

func TestEncryptDecryptCmd_RoundTrip(t *testing.T) {
	for _, algorithm := range []string{"AES", "3DES", "RC4"} {
		t.Run(algorithm, func(t *testing.T) {
			ciphertext := strings.TrimSpace(executeCommand(t, "encrypt", "--algorithm", algorithm, "--key", testPassphrase, "--plaintext", "Hello, World!"))
			require.True(t, strings.HasPrefix(ciphertext, "U2FsdGVkX1"), ciphertext)

			plaintext := strings.TrimSpace(executeCommand(t, "decrypt", "--algorithm", algorithm, "--key", testPassphrase, "--ciphertext", ciphertext))
			assert.Equal(t, "Hello, World!", plaintext)
		})
	}
}

func TestEncryptCmd_SHA256(t *testing.T) {
	digest := strings.TrimSpace(executeCommand(t, "encrypt", "--algorithm", "SHA-256", "--key", testPassphrase, "--plaintext", ""))
	assert.Equal(t, "e3b0c44298fc1c149afbf4c8996fb92427ae41e4649b934ca495991b7852b855", digest)
}

func TestEncryptCmd_ShortKeyPrintsNothing(t *testing.T) {
	out := executeCommand(t, "encrypt", "--algorithm", "AES", "--key", "short", "--plaintext", "Hello")
	assert.Empty(t, out)
}

func TestEncryptCmd_Files(t *testing.T) {
	dir := t.TempDir()
	inputPath := filepath.Join(dir, "plain.txt")
	keyPath := filepath.Join(dir, "key.txt")
	encryptedPath := filepath.Join(dir, "encrypted.txt")
	decryptedPath := filepath.Join(dir, "decrypted.txt")

	require.NoError(t, os.WriteFile(inputPath, []byte("file content\n"), 0600))
	require.NoError(t, os.WriteFile(keyPath, []byte(testPassphrase+"\n"), 0600))

	executeCommand(t, "encrypt", "--algorithm", "AES", "--key-file", keyPath, "--input-file", inputPath, "--output-file", encryptedPath)
	executeCommand(t, "decrypt", "--algorithm", "AES", "--key-file", keyPath, "--input-file", encryptedPath, "--output-file", decryptedPath)

	content, err := os.ReadFile(decryptedPath)
	require.NoError(t, err)
	assert.Equal(t, "file content", string(content))
}

func TestEncryptCmd_Copy(t *testing.T) {
	var copied string
	original := writeClipboard
	writeClipboard = func(text string) error {
		copied = text
		return nil
	}
	t.Cleanup(func() { writeClipboard = original })

	out := strings.TrimSpace(executeCommand(t, "encrypt", "--algorithm", "RC4", "--key", testPassphrase, "--plaintext", "copy me", "--copy"))
	assert.Equal(t, out, copied)
}

func TestExampleCmd(t *testing.T) {
	out := executeCommand(t, "example")
	for _, name := range []string{"AES", "3DES", "SHA-256", "RC4"} {
		assert.Contains(t, out, "Algorithm: "+name)
	}

	out = executeCommand(t, "example", "--algorithm", "SHA-256")
	assert.Contains(t, out, "Algorithm: SHA-256")
	assert.NotContains(t, out, "Algorithm: AES")
}

func TestGenerateKeyCmd(t *testing.T) {
	key := strings.TrimSpace(executeCommand(t, "generate-key", "--algorithm", "3DES"))
	assert.Len(t, key, 21)

	dir := t.TempDir()
	executeCommand(t, "generate-key", "--algorithm", "AES", "--key-dir", dir)

	matches, err := filepath.Glob(filepath.Join(dir, "*-aes-key.txt"))
	require.NoError(t, err)
	require.Len(t, matches, 1)

	content, err := os.ReadFile(matches[0])
	require.NoError(t, err)
	assert.Len(t, content, 32)
}

func TestAnalyzeCmd(t *testing.T) {
	out := executeCommand(t, "analyze", "--sort-by", "keySize", "--sort-order", "desc")
	assert.Contains(t, out, "Key Size (bits) ▼")
	assert.Contains(t, out, "1.16e77")
	assert.Contains(t, out, "Plaintext size: 1000")

	aes := strings.Index(out, "AES")
	rc4 := strings.Index(out, "RC4")
	assert.Less(t, aes, rc4)
}

func TestAnalyzeCmd_InvalidSort(t *testing.T) {
	assert.Empty(t, executeCommand(t, "analyze", "--sort-by", "unknown"))
	assert.Empty(t, executeCommand(t, "analyze", "--sort-order", "sideways"))
}

func TestKeyspaceCmd(t *testing.T) {
	out := executeCommand(t, "keyspace", "--bits", "128")
	assert.Contains(t, out, "Keyspace: 340282366920938463463374607431768211456")
	assert.Contains(t, out, "Scientific notation: 3.40e38")

	assert.Empty(t, executeCommand(t, "keyspace", "--bits", "-1"))
	assert.Empty(t, executeCommand(t, "keyspace", "--bits", "4097"))

	out = executeCommand(t, "keyspace", "--bits", "4096")
	assert.Contains(t, out, "Scientific notation: 1.04e1233")
}

func TestPerformanceCmd(t *testing.T) {
	out := executeCommand(t, "performance", "--algorithm", "RC4")
	assert.Contains(t, out, "RC4")
	assert.Contains(t, out, "Plaintext Size")

	assert.Empty(t, executeCommand(t, "performance", "--algorithm", "DES"))
}

func TestAlgorithmsCmd(t *testing.T) {
	out := executeCommand(t, "algorithms")
	assert.Contains(t, out, "SHA-256")
	assert.Contains(t, out, "hash")
}

func TestParseSortOrder(t *testing.T) {
	ascending, err := parseSortOrder("ASC")
	require.NoError(t, err)
	assert.True(t, ascending)

	ascending, err = parseSortOrder("desc")
	require.NoError(t, err)
	assert.False(t, ascending)

	_, err = parseSortOrder("up")
	assert.Error(t, err)
}
