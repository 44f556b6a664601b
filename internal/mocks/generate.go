package mocks

//go:generate go run github.com/vektra/mockery/v2@v2.53.5 --name Writer --dir ../domain/match --output domain/match --outpkg matchmock --filename writer_mock.go
//go:generate go run github.com/vektra/mockery/v2@v2.53.5 --name Repository --dir ../domain/etlrun --output domain/etlrun --outpkg etlrunmock --filename repository_mock.go
//go:generate go run github.com/vektra/mockery/v2@v2.53.5 --name SourceReader --dir ../usecase --output usecase --outpkg usecasemock --filename source_reader_mock.go
