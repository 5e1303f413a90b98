package dal

import "vidtube.com/cmd/interaction/dal/db"

func Init() {
	db.Init()
}
