package recipepattern

import "time"

func defaultNow() time.Time { return time.Now() }

var nowFunc = defaultNow
