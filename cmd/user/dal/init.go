package dal

import "vidtube.com/cmd/user/dal/db"

func Init() {
	db.Init()
}
