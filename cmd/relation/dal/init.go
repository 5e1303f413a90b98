package dal

import "vidtube.com/cmd/relation/dal/db"

func Init() {
	db.Init()
}
