package sentiment

// Polarity lexicon for issue-tracker prose. Valences are in [-1, 1] and
// lean on vocabulary that actually shows up in summaries and descriptions:
// workflow words (blocked, fixed, regression) alongside general sentiment.
var lexicon = map[string]float64{
	// positive
	"good":        0.7,
	"great":       0.8,
	"excellent":   1.0,
	"awesome":     1.0,
	"nice":        0.6,
	"love":        0.5,
	"happy":       0.8,
	"glad":        0.5,
	"thanks":      0.4,
	"thank":       0.4,
	"works":       0.3,
	"working":     0.3,
	"fixed":       0.6,
	"resolved":    0.6,
	"solved":      0.6,
	"improved":    0.6,
	"improvement": 0.5,
	"faster":      0.5,
	"clean":       0.4,
	"cleaner":     0.5,
	"stable":      0.5,
	"smooth":      0.5,
	"success":     0.7,
	"successful":  0.7,
	"easy":        0.4,
	"simple":      0.3,
	"clear":       0.3,
	"correct":     0.4,
	"ready":       0.3,
	"done":        0.3,
	"complete":    0.4,
	"completed":   0.4,
	"perfect":     0.9,
	"helpful":     0.6,
	"useful":      0.5,
	"better":      0.5,
	"best":        0.8,
	"reliable":    0.6,
	"robust":      0.5,

	// negative
	"bad":          -0.7,
	"terrible":     -1.0,
	"horrible":     -1.0,
	"awful":        -0.9,
	"poor":         -0.6,
	"worse":        -0.6,
	"worst":        -0.9,
	"hate":         -0.8,
	"angry":        -0.7,
	"frustrated":   -0.7,
	"frustrating":  -0.7,
	"annoying":     -0.6,
	"confusing":    -0.5,
	"confused":     -0.4,
	"unclear":      -0.4,
	"broken":       -0.8,
	"breaks":       -0.7,
	"break":        -0.5,
	"crash":        -0.8,
	"crashes":      -0.8,
	"crashing":     -0.8,
	"fail":         -0.7,
	"fails":        -0.7,
	"failed":       -0.7,
	"failing":      -0.7,
	"failure":      -0.7,
	"error":        -0.5,
	"errors":       -0.5,
	"bug":          -0.4,
	"buggy":        -0.7,
	"defect":       -0.5,
	"regression":   -0.6,
	"blocked":      -0.6,
	"blocker":      -0.7,
	"blocking":     -0.6,
	"stuck":        -0.6,
	"slow":         -0.4,
	"slower":       -0.5,
	"sluggish":     -0.5,
	"timeout":      -0.4,
	"hang":         -0.5,
	"hangs":        -0.5,
	"dead":         -0.6,
	"deadlock":     -0.7,
	"leak":         -0.5,
	"leaks":        -0.5,
	"corrupt":      -0.8,
	"corrupted":    -0.8,
	"lost":         -0.5,
	"missing":      -0.4,
	"wrong":        -0.5,
	"incorrect":    -0.5,
	"invalid":      -0.4,
	"unstable":     -0.6,
	"flaky":        -0.6,
	"critical":     -0.4,
	"urgent":       -0.3,
	"severe":       -0.6,
	"serious":      -0.4,
	"impossible":   -0.6,
	"unusable":     -0.8,
	"unresponsive": -0.6,
	"overloaded":   -0.5,
	"overdue":      -0.4,
	"delay":        -0.4,
	"delayed":      -0.4,
	"mess":         -0.6,
	"messy":        -0.5,
	"hack":         -0.3,
	"hacky":        -0.4,
	"pain":         -0.5,
	"painful":      -0.6,
	"problem":      -0.4,
	"problems":     -0.4,
	"issue":        -0.1,
	"issues":       -0.2,
	"complaint":    -0.5,
	"complaints":   -0.5,
	"outage":       -0.7,
	"downtime":     -0.6,
	"panic":        -0.6,
	"panics":       -0.6,
}

// negators flip the valence of the following sentiment word.
var negators = map[string]bool{
	"not":     true,
	"no":      true,
	"never":   true,
	"none":    true,
	"cannot":  true,
	"cant":    true,
	"can't":   true,
	"wont":    true,
	"won't":   true,
	"dont":    true,
	"don't":   true,
	"doesnt":  true,
	"doesn't": true,
	"isnt":    true,
	"isn't":   true,
	"without": true,
}

// boosters scale the valence of the following sentiment word.
var boosters = map[string]float64{
	"very":       1.5,
	"really":     1.5,
	"extremely":  1.8,
	"completely": 1.6,
	"totally":    1.6,
	"always":     1.3,
	"constantly": 1.4,
	"highly":     1.4,
	"so":         1.2,
	"too":        1.2,
	"quite":      1.1,
	"somewhat":   0.7,
	"slightly":   0.5,
	"barely":     0.5,
}
