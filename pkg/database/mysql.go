package database

import (
	"VidTube.com/cmd/model"
	"VidTube.com/pkg/utils"
	"github.com/cloudwego/hertz/pkg/common/hlog"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

// Init 打开数据库连接并迁移数据表
// TranslateError 使唯一索引冲突以 gorm.ErrDuplicatedKey 暴露 toggle依赖该行为
func Init() (*gorm.DB, error) {
	dsn := utils.GetMysqlDsn()
	db, err := gorm.Open(mysql.Open(dsn),
		&gorm.Config{
			PrepareStmt:            true,
			SkipDefaultTransaction: true,
			TranslateError:         true,
		},
	)
	if err != nil {
		return nil, err
	}

	if err = db.AutoMigrate(
		&model.User{},
		&model.Video{},
		&model.Comment{},
		&model.Tweet{},
		&model.Like{},
		&model.Subscription{},
	); err != nil {
		hlog.Errorf("Failed to migrate tables: %v", err)
		return nil, err
	}

	return db, nil
}
