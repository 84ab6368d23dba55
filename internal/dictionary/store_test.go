package dictionary

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name string
		data string
		want map[string]string
	}{
		{
			name: "simplified and traditional forms share a definition",
			data: "火車 火车 [huo3 che1] /train/\n",
			want: map[string]string{
				"火车": "train",
				"火車": "train",
			},
		},
		{
			name: "only the first definition of a line is kept",
			data: "馬 马 [ma3] /horse/horse or cavalry piece in Chinese chess/\n",
			want: map[string]string{
				"马": "horse",
				"馬": "horse",
			},
		},
		{
			name: "first line wins for a repeated headword",
			data: "貓 猫 [mao1] /cat/\n貓 猫 [mao1] /CL for cats/\n",
			want: map[string]string{
				"猫": "cat",
				"貓": "cat",
			},
		},
		{
			name: "comments, blank lines and malformed lines are skipped",
			data: "# CC-CEDICT\n\nnot a dictionary line\n狗 狗 [gou3] /dog/\n",
			want: map[string]string{
				"狗": "dog",
			},
		},
		{
			name: "identical simplified and traditional forms",
			data: "茶 茶 [cha2] /tea/tea plant/\n",
			want: map[string]string{
				"茶": "tea",
			},
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			store := parse([]byte(tc.data))
			assert.Equal(t, len(tc.want), store.Len())
			for word, definition := range tc.want {
				assert.Equal(t, definition, store.Lookup(word))
			}
		})
	}
}

func TestStore_Lookup(t *testing.T) {
	store := parse([]byte("貓 猫 [mao1] /cat/\n"))

	assert.Equal(t, "cat", store.Lookup("猫"))
	assert.Equal(t, "", store.Lookup("恐龙"))
}

func TestLoad(t *testing.T) {
	t.Run("reads the file at path", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "cedict.u8")
		require.NoError(t, os.WriteFile(path, []byte("鳥 鸟 [niao3] /bird/\n"), 0644))

		store := Load(path)
		assert.Equal(t, "bird", store.Lookup("鸟"))
		assert.Equal(t, "", store.Lookup("猫"))
	})

	t.Run("falls back to the bundled dictionary when the path is unreadable", func(t *testing.T) {
		store := Load(filepath.Join(t.TempDir(), "does-not-exist.u8"))
		assert.Equal(t, "cat", store.Lookup("猫"))
	})

	t.Run("empty path uses the bundled dictionary", func(t *testing.T) {
		store := Load("")
		assert.Equal(t, "train", store.Lookup("火车"))
		assert.Greater(t, store.Len(), 100)
	})
}
