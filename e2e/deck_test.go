//go:build e2e && unix

package main

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

const threePageDeck = `
title = "e2e deck"

[[pages]]
title = "Alpha page"
body = "first"

[[pages]]
title = "Bravo page"
body = "second"

[[pages]]
title = "Charlie page"
body = "third"
`

func startDeck(t *testing.T, deck string, args ...string) *TUITestFramework {
	t.Helper()
	tf := NewTUITest(t)
	t.Cleanup(tf.Cleanup)

	path := tf.WriteDeck(deck)
	require.NoError(t, tf.StartApp(append(args, path)...))
	require.True(t, tf.SeePlain("Alpha page"), "should show the first page")
	require.True(t, tf.SeePlain("1/3"), "should show the page counter")
	return tf
}

func TestKeyboardNavigation(t *testing.T) {
	t.Parallel()
	tf := startDeck(t, threePageDeck)

	require.NoError(t, tf.SendKeys(KeyLeft))
	require.True(t, tf.SeePlain("Charlie page"), "left arrow should wrap to the last page")
	require.True(t, tf.SeePlain("3/3"))

	require.NoError(t, tf.SendKeys(KeyRight))
	require.True(t, tf.WaitFor(func(s string) bool {
		plain := ansiRe.ReplaceAllString(s, "")
		return strings.LastIndex(plain, "1/3") > strings.LastIndex(plain, "3/3")
	}, 3*time.Second), "right arrow should wrap to the first page")

	require.NoError(t, tf.SendKeys(KeyRight))
	require.True(t, tf.SeePlain("Bravo page"))
	require.True(t, tf.SeePlain("2/3"))
}

func TestClickZones(t *testing.T) {
	t.Parallel()
	tf := startDeck(t, threePageDeck)

	require.NoError(t, tf.Click(termCols-10, termRows/2))
	require.True(t, tf.SeePlain("2/3"), "click on the right half should go forward")

	require.NoError(t, tf.Click(5, termRows/2))
	require.True(t, tf.WaitFor(func(s string) bool {
		plain := ansiRe.ReplaceAllString(s, "")
		return strings.LastIndex(plain, "1/3") > strings.LastIndex(plain, "2/3")
	}, 3*time.Second), "click on the left half should go back")
}

func TestSwipe(t *testing.T) {
	t.Parallel()
	tf := startDeck(t, threePageDeck)

	require.NoError(t, tf.Drag(80, 40, termRows/2))
	require.True(t, tf.SeePlain("Bravo page"), "dragging left should go forward")
}

func TestAutoAdvanceAndStop(t *testing.T) {
	t.Parallel()
	tf := startDeck(t, threePageDeck, "--auto-advance", "--interval", "300ms", "--transition", "0s")

	require.True(t, tf.SeePlain("auto 300ms"))
	require.True(t, tf.OutputContainsPlain("Bravo page", 3*time.Second), "deck should advance on its own")

	require.NoError(t, tf.SendKeys(KeyStop))
	require.True(t, tf.SeePlain("auto off"), "s should stop auto-advance")
}

func TestQuitExitsCleanly(t *testing.T) {
	t.Parallel()
	tf := startDeck(t, threePageDeck)

	require.NoError(t, tf.Quit())
	exited, err := tf.WaitExit(5 * time.Second)
	require.True(t, exited, "q should exit the program")
	require.NoError(t, err)
}

func TestMissingDeckFails(t *testing.T) {
	t.Parallel()
	tf := NewTUITest(t)
	t.Cleanup(tf.Cleanup)

	require.NoError(t, tf.StartApp(tf.workspace+"/missing.toml"))
	exited, err := tf.WaitExit(5 * time.Second)
	require.True(t, exited)
	require.Error(t, err, "missing deck should exit non-zero")
	require.True(t, tf.SeePlain("deck file not found"))
}
