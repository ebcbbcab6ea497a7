//go:build e2e && unix

package main

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestRowSelection(t *testing.T) {
	t.Parallel()
	tf := NewTUITest(t)
	defer tf.Cleanup()

	require.NoError(t, tf.StartApp(100))
	require.True(t, tf.Ready(), "Should render the first page")
	require.True(t, tf.SeePlain("Artwork 1"))

	tf.Select()
	require.True(t, tf.SeePlain("1 selected"), "toggle should select the row")

	tf.Down()
	tf.Select()
	require.True(t, tf.SeePlain("2 selected"))
}

func TestSelectionSurvivesPaging(t *testing.T) {
	t.Parallel()
	tf := NewTUITest(t)
	defer tf.Cleanup()

	require.NoError(t, tf.StartApp(100))
	require.True(t, tf.Ready())

	tf.Select()
	require.True(t, tf.SeePlain("1 selected"))

	tf.NextPage()
	require.True(t, tf.SeePlain("Showing 7 to 12 of 100 entries"), "second page should load")

	tf.Select()
	require.True(t, tf.SeePlain("2 selected"), "selection carries across pages")
}

func TestSelectFirstRows(t *testing.T) {
	t.Parallel()
	tf := NewTUITest(t)
	defer tf.Cleanup()

	require.NoError(t, tf.StartApp(100))
	require.True(t, tf.Ready())

	require.NoError(t, tf.SelectFirst("4"))
	require.True(t, tf.SeePlain("Selected 4 rows"))

	// cancelling the dialog keeps the selection
	tf.SendKeys(KeyHeader)
	require.True(t, tf.SeePlain("Select rows"))
	time.Sleep(50 * time.Millisecond)
	tf.SendKeys("2")
	tf.SendKeys(KeyEsc)
	time.Sleep(200 * time.Millisecond)
	require.NotContains(t, tailAfter(tf.SnapshotPlain(), "Selected 4 rows"), "2 selected")
}

func TestPageSizeFlag(t *testing.T) {
	t.Parallel()
	tf := NewTUITest(t)
	defer tf.Cleanup()

	require.NoError(t, tf.StartApp(100, "--page-size", "12"))
	require.True(t, tf.SeePlain("Showing 1 to 12 of 100 entries"))
}

// tailAfter returns the output written after the last occurrence of marker
func tailAfter(s, marker string) string {
	if i := strings.LastIndex(s, marker); i >= 0 {
		return s[i+len(marker):]
	}
	return s
}
