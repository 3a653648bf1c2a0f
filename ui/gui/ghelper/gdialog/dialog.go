package gdialog

import (
	"fmt"

	"github.com/sqweek/dialog"
)

// ShowError opens a blocking native error box.
func ShowError(title string, err error) {
	if err == nil {
		return
	}
	dialog.Message("%s", fmt.Sprint(err)).Title(title).Error()
}
