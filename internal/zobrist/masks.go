package zobrist

// Fixed mask table. The upper 64 bits of the piece, turn, castling and en
// passant masks are the Polyglot Random64 keys.

var pieceMasks = [64 * 6 * 2]Mask{
	// black pawn
	{0x9d39247e33776d41, 0x52b375aa7c0d7bac},
	{0x2af7398005aaa5c7, 0x208d169a534f2cf5},
	{0x44db015024623547, 0x8981513722b47f24},
	{0x9c15f73e62a76ae2, 0x09b8f20f910a8ff7},
	{0x75834465489c0c89, 0x0b8ea70255209cc0},
	{0x3290ac3a203001bf, 0xa688a9791f027500},
	{0x0fbbad1f61042279, 0x19b88b8ffaed8f55},
	{0xe83a908ff2fb60ca, 0x88bf7822d00d5526},
	{0x0d7e765d58755c10, 0xdb7bf62ab390b71b},
	{0x1a083822ceafe02d, 0x33a6ac1d85c9f22f},
	{0x9605d5f0e25ec3b0, 0x55ab2a27271d42ac},
	{0xd021ff5cd13a2ed5, 0x40a21ff9c803fca4},
	{0x40bdf15d4a672e32, 0x3c169aeb80a1d5d2},
	{0x011355146fd56395, 0x87684e27293ecf96},
	{0x5db4832046f3d9e5, 0xf8b91b39d4c6997c},
	{0x239f8b2d7ff719cc, 0x1d5f744f312fd467},
	{0x05d1a1ae85b49aa1, 0xeda18c452d5de5b4},
	{0x679f848f6e8fc971, 0x7497db888eccda0f},
	{0x7449bbff801fed0b, 0x94c1bb7016749887},
	{0x7d11cdb1c3b7adf0, 0x35b23d663606fde2},
	{0x82c7709e781eb7cc, 0x17b4ae80b8184845},
	{0xf3218f1c9510786c, 0x8bd98922a3089d8e},
	{0x331478f3af51bbe6, 0xfec77fb07cea5e84},
	{0x4bb38de5e7219443, 0xe153a54d23c93a8a},
	{0xaa649c6ebcfd50fc, 0xa196fa76c24405eb},
	{0x8dbd98a352afd40b, 0x6f333e11d079240a},
	{0x87d2074b81d79217, 0x23b8d480df5bb521},
	{0x19f3c751d3e92ae1, 0x634adaec002b3000},
	{0xb4ab30f062b19abf, 0x3d0e41d65872d549},
	{0x7b0500ac42047ac4, 0x5aba83908462b892},
	{0xc9452ca81a09d85d, 0x26457864aff288af},
	{0x24aa6c514da27500, 0x43f10561015da64e},
	{0x4c9f34427501b447, 0x545cc6285df42807},
	{0x14a68fd73c910841, 0xa7140dc7b82e96ef},
	{0xa71b9b83461cbd93, 0xb1dcadc8fe30a8d4},
	{0x03488b95b0f1850f, 0x72ebd048ba373ac4},
	{0x637b2b34ff93c040, 0x2eb0ddf1351a1adb},
	{0x09d1bc9a3dd90a94, 0x9cdc8c44a201836d},
	{0x3575668334a1dd3b, 0x0afc1fb45a728973},
	{0x735e2b97a4c45a23, 0x58c8fa415b96ec95},
	{0x18727070f1bd400b, 0x497a9b9a7f9f8872},
	{0x1fcbacd259bf02e7, 0xbff840799ee05fdf},
	{0xd310a7c2ce9b6555, 0xe4ec1554316c2704},
	{0xbf983fe0fe5d8244, 0x3c9f0c8b89f31f3e},
	{0x9f74d14f7454a824, 0x4a601b99475baf4e},
	{0x51ebdc4ab9ba3035, 0x6c65e1386536c3a9},
	{0x5c82c505db9ab0fa, 0xb60a571d59e8a485},
	{0xfcf7fe8a3430b241, 0xe23c5d7045696d85},
	{0x3253a729b9ba3dde, 0xc9d4d61b569ec607},
	{0x8c74c368081b3075, 0xce9ed71a6d18deb2},
	{0xb9bc6c87167c33e7, 0x2dbc16559bdba870},
	{0x7ef48f2b83024e20, 0x50cda5339d836c83},
	{0x11d505d4c351bd7f, 0x98091ef4f2ab1ed3},
	{0x6568fca92c76a243, 0xf5803ac17fc45ecf},
	{0x4de0b0f40f32a7b8, 0x09730ef15a78c687},
	{0x96d693460cc37e5d, 0xf8bb209d715ab566},
	{0x42e240cb63689f2f, 0x0c5b201d6cb89a50},
	{0x6d2bdcdae2919661, 0x52571fbfabb4a367},
	{0x42880b0236e4d951, 0x1b1db82269890861},
	{0x5f0f4a5898171bb6, 0x9423f70ed512f1ea},
	{0x39f890f579f92f88, 0x79e448c72183e2a5},
	{0x93c5b5f47356388b, 0x3c88a0cf5b852900},
	{0x63dc359d8d231b78, 0x9e12f819acaa6653},
	{0xec16ca8aea98ad76, 0xc6f09266299a5902},
	// white pawn
	{0x5355f900c2a82dc7, 0x3e8cad2210fce3f3},
	{0x07fb9f855a997142, 0xa3868eff53346da1},
	{0x5093417aa8a7ed5e, 0x61de5496186b0d70},
	{0x7bcbc38da25a7f3c, 0xe17a09f0e53bc940},
	{0x19fc8a768cf4b6d4, 0xe0ffe83afe44ec11},
	{0x637a7780decfc0d9, 0xf35a5e3184c1c980},
	{0x8249a47aee0e41f7, 0x83390d9b2e7563a6},
	{0x79ad695501e7d1e8, 0x950f14737ed6be5b},
	{0x14acbaf4777d5776, 0x6df42fcfa743809d},
	{0xf145b6beccdea195, 0x0f2b1872ba3fef30},
	{0xdabf2ac8201752fc, 0x04171b94f58c5d2e},
	{0x24c3c94df9c8d3f6, 0x78b05fea0dc77c38},
	{0xbb6e2924f03912ea, 0xa76ddf41aa675504},
	{0x0ce26c0b95c980d9, 0xe634bc8f87d0fe75},
	{0xa49cd132bfbf7cc4, 0x2dbf77a8851237de},
	{0xe99d662af4243939, 0x10f9b7d996836741},
	{0x27e6ad7891165c3f, 0x26f6547bb0471fb0},
	{0x8535f040b9744ff1, 0xf727c06db8bb34e0},
	{0x54b3f4fa5f40d873, 0x28984171f866b615},
	{0x72b12c32127fed2b, 0x349d245078c312ef},
	{0xee954d3c7b411f47, 0x99f8f1ab94a13206},
	{0x9a85ac909a24eaa1, 0x967d7e5e99566e67},
	{0x70ac4cd9f04f21f5, 0x470fda103f9476cc},
	{0xf9b89d3e99a075c2, 0x37dad4fcdedc6db8},
	{0x87b3e2b2b5c907b1, 0x99f91b1cd65c50f0},
	{0xa366e5b8c54f48b8, 0x6d89c29cb7034aef},
	{0xae4a9346cc3f7cf2, 0x824c9daa114a11c7},
	{0x1920c04d47267bbd, 0xf3b1ee14505939c6},
	{0x87bf02c6b49e2ae9, 0x2fa0d39cbee05ced},
	{0x092237ac237f3859, 0xc0c43ea8a642a49c},
	{0xff07f64ef8ed14d0, 0x4824a871bca34e17},
	{0x8de8dca9f03cc54e, 0x394b500f07f96989},
	{0x9c1633264db49c89, 0x7c6efb4dc9bea9d9},
	{0xb3f22c3d0b0b38ed, 0xca09213bfeb36c6a},
	{0x390e5fb44d01144b, 0x0069832f9f2bd0b5},
	{0x5bfea5b4712768e9, 0xf092a01d0d4420da},
	{0x1e1032911fa78984, 0x6952e2015db39c5a},
	{0x9a74acb964e78cb3, 0xf3993e2a4cdf615e},
	{0x4f80f7a035dafb04, 0x7d3ddc6bef2ed6f2},
	{0x6304d09a0b3738c4, 0xa7040db38e233bac},
	{0x2171e64683023a08, 0xa8b59fe4836ffc08},
	{0x5b9b63eb9ceff80c, 0xc55dbb54360414a9},
	{0x506aacf489889342, 0x3e24465359dc03c0},
	{0x1881afc9a3a701d6, 0xd27a416ed84cc3b7},
	{0x6503080440750644, 0x7a77677e0de620c4},
	{0xdfd395339cdbf4a7, 0x30cacd32e0313d3b},
	{0xef927dbcf00c20f2, 0xdc6952fd3e61c11a},
	{0x7b32f7d1e03680ec, 0x08ab1642b5129e01},
	{0xb9fd7620e7316243, 0xaa8e0962b8eebcdc},
	{0x05a7e8a57db91b77, 0x6dda36bacc3b2e2c},
	{0xb5889c6e15630a75, 0xba82f4e2cb60b43e},
	{0x4a750a09ce9573f7, 0x509da4ba5295c4a5},
	{0xcf464cec899a2f8a, 0x36a18fa38c3d74c6},
	{0xf538639ce705b824, 0xb9e5652481a6df69},
	{0x3c79a0ff5580ef7f, 0x5f4946b7dd41d1c7},
	{0xede6c87f8477609d, 0xfd7a4fb7bfe1d23d},
	{0x799e81f05bc93f31, 0x32e0b2b68ea83031},
	{0x86536b8cf3428a8c, 0xf25fcb24f0c19623},
	{0x97d7374c60087b73, 0xa317676dc1eb8797},
	{0xa246637cff328532, 0xf754b557c09ae146},
	{0x043fcae60cc0eba0, 0x5bbd920fffe5fa7a},
	{0x920e449535dd359e, 0x5b3c978e296d2280},
	{0x70eb093b15b290cc, 0xca9c1ea34fc1484f},
	{0x73a1921916591cbd, 0x470c408e3b3d2dc5},
	// black knight
	{0x56436c9fe1a1aa8d, 0x6a0772093f97e152},
	{0xefac4b70633b8f81, 0xfa76d36719e7e5e3},
	{0xbb215798d45df7af, 0x2e799233a544062a},
	{0x45f20042f24f1768, 0xe003451144a03be8},
	{0x930f80f4e8eb7462, 0x974d8f4ee692ed35},
	{0xff6712ffcfd75ea1, 0xd30afadfc4dc52f5},
	{0xae623fd67468aa70, 0x278dde02bf30c1da},
	{0xdd2c5bc84bc8d8fc, 0x8b7e3a2bf5a061a3},
	{0x7eed120d54cf2dd9, 0xd1443752e511a579},
	{0x22fe545401165f1c, 0xd1b02672a0ec44cf},
	{0xc91800e98fb99929, 0xba3005c8512514f1},
	{0x808bd68e6ac10365, 0x2e3b86211f6b4295},
	{0xdec468145b7605f6, 0x057431bfeaa9d6f5},
	{0x1bede3a3aef53302, 0xa348ddd66378afaf},
	{0x43539603d6c55602, 0x4a1817775b086ce1},
	{0xaa969b5c691ccb7a, 0x184b1c983a6a1a77},
	{0xa87832d392efee56, 0xcb70392e7b7db185},
	{0x65942c7b3c7e11ae, 0x3b1b1166a648330e},
	{0xded2d633cad004f6, 0xe5201b155f51cc30},
	{0x21f08570f420e565, 0x4d053ee865f21b96},
	{0xb415938d7da94e3c, 0xd8d8062e343d9c66},
	{0x91b859e59ecb6350, 0x13507b31a966da7d},
	{0x10cff333e0ed804a, 0xd637536d2e7a58b0},
	{0x28aed140be0bb7dd, 0xcbcae035eab824a0},
	{0xc5cc1d89724fa456, 0x8c77fe1e1b06691b},
	{0x5648f680f11a2741, 0xfd7841ed1ab4b961},
	{0x2d255069f0b7dab3, 0xcaa88da017669d53},
	{0x9bc5a38ef729abd4, 0xabda5baf650b3675},
	{0xef2f054308f6a2bc, 0xfe14d0c6b8f11e97},
	{0xaf2042f5cc5c2858, 0xc13423f81c4b9adf},
	{0x480412bab7f5be2a, 0x34507a3503935243},
	{0xaef3af4a563dfe43, 0xec504bd0c7ae79a1},
	{0x19afe59ae451497f, 0x0bc761ea4004d2ae},
	{0x52593803dff1e840, 0x3a0748078a78fd4d},
	{0xf4f076e65f2ce6f0, 0xc5f36bde8caa93fe},
	{0x11379625747d5af3, 0x5b2299dc44080278},
	{0xbce5d2248682c115, 0x3f99cbeb6ec653fa},
	{0x9da4243de836994f, 0x48ebcfc004b524ca},
	{0x066f70b33fe09017, 0xd2278829cd344d05},
	{0x4dc4de189b671a1c, 0x5fe637e58fc1c0f3},
	{0x51039ab7712457c3, 0x0a4b136f25a65a32},
	{0xc07a3f80c31fb4b4, 0x4119314b520d04d9},
	{0xb46ee9c5e64a6e7c, 0x5354a8b08947cc8e},
	{0xb3819a42abe61c87, 0x6001d6a94517300b},
	{0x21a007933a522a20, 0x14597a074f133855},
	{0x2df16f761598aa4f, 0xdc9a6baf92ffde03},
	{0x763c4a1371b368fd, 0xc5cbc5270de986b0},
	{0xf793c46702e086a0, 0x95c72d49bd7560be},
	{0xd7288e012aeb8d31, 0x12b437e4c286737a},
	{0xde336a2a4bc1c44b, 0xaa7c6f89f1442c5d},
	{0x0bf692b38d079f23, 0x1a3ebbf317bfc4d8},
	{0x2c604a7a177326b3, 0x4ad3c9fa863a5aa3},
	{0x4850e73e03eb6064, 0xc7c94147de663b5b},
	{0xcfc447f1e53c8e1b, 0x840e7fe4b35d4a4b},
	{0xb05ca3f564268d99, 0x8921109126e23341},
	{0x9ae182c8bc9474e8, 0xa18a4f12c127de17},
	{0xa4fc4bd4fc5558ca, 0x471973e4dc6efb4b},
	{0xe755178d58fc4e76, 0xc723867b98d07330},
	{0x69b97db1a4c03dfe, 0xf5fcc6de350950d1},
	{0xf9b5b7c4acc67c96, 0xb90913e02bde576a},
	{0xfc6a82d64b8655fb, 0x5554c92f272b73c5},
	{0x9c684cb6c4d24417, 0x3738a3f0fdf5d9c6},
	{0x8ec97d2917456ed0, 0x3771f25e5e278ee3},
	{0x6703df9d2924e97e, 0xa9d58a812b10906e},
	// white knight
	{0xc547f57e42a7444e, 0x2814f2a19d8670eb},
	{0x78e37644e7cad29e, 0x5ced6d617e9d6b4d},
	{0xfe9a44e9362f05fa, 0x69be27bdc682e06a},
	{0x08bd35cc38336615, 0x945e3cd54c7a41f4},
	{0x9315e5eb3a129ace, 0xfac825c29c4e52fc},
	{0x94061b871e04df75, 0x95c380633671f3c0},
	{0xdf1d9f9d784ba010, 0xb1f0f11b309f849f},
	{0x3bba57b68871b59d, 0x36b7ac17862bc4ac},
	{0xd2b7adeeded1f73f, 0x8b89835b5e731ac5},
	{0xf7a255d83bc373f8, 0x122138b676fc6561},
	{0xd7f4f2448c0ceb81, 0xce3107b858b368ea},
	{0xd95be88cd210ffa7, 0xaa14dd3733de4203},
	{0x336f52f8ff4728e7, 0xec4ea6805a8dad1e},
	{0xa74049dac312ac71, 0xce5cd5938049dcf0},
	{0xa2f61bb6e437fdb5, 0x21156227c06a4b0b},
	{0x4f2a5cb07f6a35b3, 0xda13d541802c4d5e},
	{0x87d380bda5bf7859, 0xfbf03d5c9f783bb2},
	{0x16b9f7e06c453a21, 0xe512fa9fd5c68b8a},
	{0x7ba2484c8a0fd54e, 0x30bd781b22277dcd},
	{0xf3a678cad9a2e38c, 0x56625e22aef316ec},
	{0x39b0bf7dde437ba2, 0xed75251a71024db6},
	{0xfcaf55c1bf8a4424, 0xb468dc45b39cde2f},
	{0x18fcf680573fa594, 0x68b33836bea9a0a0},
	{0x4c0563b89f495ac3, 0x3187565f03cc0d85},
	{0x40e087931a00930d, 0x9bbc591ddc43447f},
	{0x8cffa9412eb642c1, 0xc53a29458191d2db},
	{0x68ca39053261169f, 0x6bc263803d691ec8},
	{0x7a1ee967d27579e2, 0x04cca68628858bac},
	{0x9d1d60e5076f5b6f, 0xa20a13cffa4679d1},
	{0x3810e399b6f65ba2, 0x85725a1e096e1abf},
	{0x32095b6d4ab5f9b1, 0xbc986393043f78d5},
	{0x35cab62109dd038a, 0x0fa47125507ccb12},
	{0xa90b24499fcfafb1, 0xc2c27b60c8b2ce36},
	{0x77a225a07cc2c6bd, 0x217520a809c97da6},
	{0x513e5e634c70e331, 0x552ad48c96617c16},
	{0x4361c0ca3f692f12, 0x758c0637401144ae},
	{0xd941aca44b20a45b, 0xf1ae50d591aeb10f},
	{0x528f7c8602c5807b, 0x0c127280b89240a3},
	{0x52ab92beb9613989, 0xa9a8cd5ddd7737b0},
	{0x9d1dfa2efc557f73, 0x8506683f3e28c050},
	{0x722ff175f572c348, 0x8105b0573483941f},
	{0x1d1260a51107fe97, 0xd00bcf6974e8788c},
	{0x7a249a57ec0c9ba2, 0x3311a2a4e61fc638},
	{0x04208fe9e8f7f2d6, 0x5b31cba035ff4f50},
	{0x5a110c6058b920a0, 0x9ef049141a01e743},
	{0x0cd9a497658a5698, 0x3355b7a63e03cf20},
	{0x56fd23c8f9715a4c, 0x78bf716c2f94ffcf},
	{0x284c847b9d887aae, 0x232304d6a359676e},
	{0x04feabfbbdb619cb, 0xffeebdd04f15816e},
	{0x742e1e651c60ba83, 0x594fdc90c434a4fd},
	{0x9a9632e65904ad3c, 0xba5cc088b72c0942},
	{0x881b82a13b51b9e2, 0x036efdc30e389de2},
	{0x506e6744cd974924, 0x5038b23c9af174d2},
	{0xb0183db56ffc6a79, 0x9b5e64f304474d48},
	{0x0ed9b915c66ed37e, 0x280a4b8c73c2e8d8},
	{0x5e11e86d5873d484, 0xfda076be88bcc507},
	{0xf678647e3519ac6e, 0xafc896ae852c60c2},
	{0x1b85d488d0f20cc5, 0xbe903340939e63fd},
	{0xdab9fe6525d89021, 0x7a97bd60aba4c349},
	{0x0d151d86adb73615, 0xf62e51f178597cf9},
	{0xa865a54edcc0f019, 0x8f9ab42711b663dc},
	{0x93c42566aef98ffb, 0xc8d003d119dcac63},
	{0x99e7afeabe000731, 0xef2101c32adaed38},
	{0x48cbff086ddf285a, 0xdde81906502ad1b0},
	// black bishop
	{0x7f9b6af1ebf78baf, 0x149756bc21368632},
	{0x58627e1a149bba21, 0x25c80f323a516eaa},
	{0x2cd16e2abd791e33, 0x3ea039f7ff28ae8e},
	{0xd363eff5f0977996, 0x0caf481f40063dd8},
	{0x0ce2a38c344a6eed, 0xbce23e106b1eefd7},
	{0x1a804aadb9cfa741, 0x10853ea82a5ccb34},
	{0x907f30421d78c5de, 0xe7c76ac3dbbf8c8c},
	{0x501f65edb3034d07, 0x1624c0ce1532313d},
	{0x37624ae5a48fa6e9, 0x5f3895b25d7b4744},
	{0x957baf61700cff4e, 0xfbe363cbb55a913e},
	{0x3a6c27934e31188a, 0x35850e8f63400ddd},
	{0xd49503536abca345, 0x3d300047b5ddde66},
	{0x088e049589c432e0, 0x1c1c7ca8b3386353},
	{0xf943aee7febf21b8, 0x986ec52ac2c88cec},
	{0x6c3b8e3e336139d3, 0xc93b616a554d23c8},
	{0x364f6ffa464ee52e, 0x211d7b5759da7504},
	{0xd60f6dcedc314222, 0xf2663fc59b541585},
	{0x56963b0dca418fc0, 0xf57fefeadb21b029},
	{0x16f50edf91e513af, 0x30fd60d9ee260966},
	{0xef1955914b609f93, 0x3c29da000d5b9a08},
	{0x565601c0364e3228, 0xd0d6203fa69da0ba},
	{0xecb53939887e8175, 0x8167e4bd87c6f05e},
	{0xbac7a9a18531294b, 0x5c063405c62f8154},
	{0xb344c470397bba52, 0xb86fe57d53081fe6},
	{0x65d34954daf3cebd, 0xeb60ad080cd573fe},
	{0xb4b81b3fa97511e2, 0xbfbbb41602635b78},
	{0xb422061193d6f6a7, 0x4e39d536b723213c},
	{0x071582401c38434d, 0x56d7e0468df15a47},
	{0x7a13f18bbedc4ff5, 0x9e601537348ed732},
	{0xbc4097b116c524d2, 0xee2e827d9faa74c1},
	{0x59b97885e2f2ea28, 0xe43302e0d517a316},
	{0x99170a5dc3115544, 0xf662e9ba781a1fae},
	{0x6f423357e7c6a9f9, 0xe83da2efce442856},
	{0x325928ee6e6f8794, 0x143ae097749a513a},
	{0xd0e4366228b03343, 0xa203386e6a86f7c7},
	{0x565c31f7de89ea27, 0x73905f8c5056ecee},
	{0x30f5611484119414, 0x0da07ce44c0142e4},
	{0xd873db391292ed4f, 0x8b9e97003ef01d2e},
	{0x7bd94e1d8e17debc, 0xd8c666a665840842},
	{0xc7d9f16864a76e94, 0x8bb1069bba169263},
	{0x947ae053ee56e63c, 0x6bdc866d7daa19dc},
	{0xc8c93882f9475f5f, 0xe1115bb3f8ad0cfe},
	{0x3a9bf55ba91f81ca, 0x0859ae34a51ed77c},
	{0xd9a11fbb3d9808e4, 0xf1d73663c53a0156},
	{0x0fd22063edc29fca, 0x669283df212c93db},
	{0xb3f256d8aca0b0b9, 0x7489abc08bd4db15},
	{0xb03031a8b4516e84, 0xf9d2b26d0375aab0},
	{0x35dd37d5871448af, 0xde4856e7777e27d1},
	{0xe9f6082b05542e4e, 0x2caeaf61386fa1f2},
	{0xebfafa33d7254b59, 0x7c6d4b00383f052a},
	{0x9255abb50d532280, 0xb1943df6ea3687ff},
	{0xb9ab4ce57f2d34f3, 0x7e4d1baca94da20d},
	{0x693501d628297551, 0x38d1a6b6448fdc40},
	{0xc62c58f97dd949bf, 0x8aed53051756d212},
	{0xcd454f8f19c5126a, 0x1805fa7482c60f4e},
	{0xbbe83f4ecc2bdecb, 0x24c9891c2f4db0b1},
	{0xdc842b7e2819e230, 0xbb703190b30eb664},
	{0xba89142e007503b8, 0xb52f857f41e68fce},
	{0xa3bc941d0a5061cb, 0xeb5a7a714d4ec1a1},
	{0xe9f6760e32cd8021, 0xc41334a36d4211ea},
	{0x09c7e552bc76492f, 0xe60188ecb537010d},
	{0x852f54934da55cc9, 0xff67dd932e5755cc},
	{0x8107fccf064fcf56, 0x14c92be552467cfb},
	{0x098954d51fff6580, 0xc94fb8eae42b3453},
	// white bishop
	{0x23b70edb1955c4bf, 0x0bd007042735acc6},
	{0xc330de426430f69d, 0xb9dd82debb9abd3d},
	{0x4715ed43e8a45c0a, 0x3312b675a5bc5dfb},
	{0xa8d7e4dab780a08d, 0xd2e9447e6c6d3509},
	{0x0572b974f03ce0bb, 0xd4d771a89c91beb6},
	{0xb57d2e985e1419c7, 0x31d0724183248884},
	{0xe8d9ecbe2cf3d73f, 0xe7229acdb568bc00},
	{0x2fe4b17170e59750, 0xb4ef94e8251ecb66},
	{0x11317ba87905e790, 0xac817cad3cfb00ed},
	{0x7fbf21ec8a1f45ec, 0x3fe869890b69552c},
	{0x1725cabfcb045b00, 0x91aec362daa37fcd},
	{0x964e915cd5e2b207, 0xfb25f88ca887ca77},
	{0x3e2b8bcbf016d66d, 0x053bff886db0847c},
	{0xbe7444e39328a0ac, 0x991fd5641b666e80},
	{0xf85b2b4fbcde44b7, 0x24fc37ad820ed73a},
	{0x49353fea39ba63b1, 0x2b2bcac1fa28086e},
	{0x1dd01aafcd53486a, 0x4c1a3a2190e08f26},
	{0x1fca8a92fd719f85, 0x8e718591cf07851e},
	{0xfc7c95d827357afa, 0xb14fadbd3baa703f},
	{0x18a6a990c8b35ebd, 0x8f1eb8cc7eedd98e},
	{0xcccb7005c6b9c28d, 0x89ed662f01bcb2fd},
	{0x3bdbb92c43b17f26, 0xa263fa3b9a325a8f},
	{0xaa70b5b4f89695a2, 0xbae9f4e14d09637c},
	{0xe94c39a54a98307f, 0x6be076b52945a007},
	{0xb7a0b174cff6f36e, 0xd264830e7dc7f906},
	{0xd4dba84729af48ad, 0xc26059b78ed6854f},
	{0x2e18bc1ad9704a68, 0x148dca9a9b0c8474},
	{0x2de0966daf2f8b1c, 0x9749c69073bafeb8},
	{0xb9c11d5b1e43a07e, 0xbba6f4662b0cfd3c},
	{0x64972d68dee33360, 0x620103f01e5b63f8},
	{0x94628d38d0c20584, 0x4c7820f950a4c583},
	{0xdbc0d2b6ab90a559, 0xe1262fa8ff1d3269},
	{0xd2733c4335c6a72f, 0x8f5121c2873029ef},
	{0x7e75d99d94a70f4d, 0x4fb3edb54d507b36},
	{0x6ced1983376fa72b, 0xf8594c470632ebb6},
	{0x97fcaacbf030bc24, 0xb6e876e78ecf5164},
	{0x7b77497b32503b12, 0xafeb0a5d807150f5},
	{0x8547eddfb81ccb94, 0xf651bea4c88fcaae},
	{0x79999cdff70902cb, 0xbfbce123f03177da},
	{0xcffe1939438e9b24, 0xb6aa0fd22855e81c},
	{0x829626e3892d95d7, 0xa240adf54d70b24e},
	{0x92fae24291f2b3f1, 0x732ea6db834bf5a4},
	{0x63e22c147b9c3403, 0xb47231e07ae8b35f},
	{0xc678b6d860284a1c, 0x80554c039ab7af15},
	{0x5873888850659ae7, 0xdb2e83297a30b541},
	{0x0981dcd296a8736d, 0xd58b2a396b5a1669},
	{0x9f65789a6509a440, 0x2151156aaffdf4b7},
	{0x9ff38fed72e9052f, 0x65479a629704845e},
	{0xe479ee5b9930578c, 0xa9bed81039cf1c6d},
	{0xe7f28ecd2d49eecd, 0xd1a3f98b97eea710},
	{0x56c074a581ea17fe, 0xff78a5d72aa18fe3},
	{0x5544f7d774b14aef, 0x96d1a9830ba7ffd3},
	{0x7b3f0195fc6f290f, 0xe19f501dcdf116db},
	{0x12153635b2c0cf57, 0x8e68f253a278535d},
	{0x7f5126dbba5e0ca7, 0xdc75c481b2cdc0fa},
	{0x7a76956c3eafb413, 0x7162fa408d9042fd},
	{0x3d5774a11d31ab39, 0x9fadef0bce1a7da1},
	{0x8a1b083821f40cb4, 0x5421bbff426d4e84},
	{0x7b4a38e32537df62, 0xe7944beeb699c0e7},
	{0x950113646d1d6e03, 0x2ed8b2db03799071},
	{0x4da8979a0041e8a9, 0xfc4e188df10d5454},
	{0x3bc36e078f7515d7, 0x9de7df26c1457c8f},
	{0x5d0a12f27ad310d1, 0x8fd73517b47f22c8},
	{0x7f9d1a2e1ebe1327, 0xa3005e22b1bd3e53},
	// black rook
	{0xda3a361b1c5157b1, 0x2bb2c23c899cbc9e},
	{0xdcdd7d20903d0c25, 0xbfb0766d26526dbf},
	{0x36833336d068f707, 0x166dbdc38309e26b},
	{0xce68341f79893389, 0x6796f7e11a4c3cba},
	{0xab9090168dd05f34, 0x562c093e14a87ff2},
	{0x43954b3252dc25e5, 0x3627e637e2413092},
	{0xb438c2b67f98e5e9, 0x240414702e63067a},
	{0x10dcd78e3851a492, 0xa6f63494f774323c},
	{0xdbc27ab5447822bf, 0xc19ea801fb344afb},
	{0x9b3cdb65f82ca382, 0x9d18e8c21a6c8c61},
	{0xb67b7896167b4c84, 0x87f9503f9fded941},
	{0xbfced1b0048eac50, 0x3e5098f627c4ed6c},
	{0xa9119b60369ffebd, 0x6eb063443f58c2ae},
	{0x1fff7ac80904bf45, 0x3427200616f65462},
	{0xac12fb171817eee7, 0xe3b74fe55c76691f},
	{0xaf08da9177dda93d, 0xd6316d5008f932ec},
	{0x1b0cab936e65c744, 0x35a0d4ca7416842f},
	{0xb559eb1d04e5e932, 0xde4683286c56072d},
	{0xc37b45b3f8d6f2ba, 0x158754657dc0f21d},
	{0xc3a9dc228caac9e9, 0x6d808b472208eab2},
	{0xf3b8b6675a6507ff, 0xcb208f7c937f44e6},
	{0x9fc477de4ed681da, 0xdff1dc38532c3a2e},
	{0x67378d8eccef96cb, 0x64ee6958558a5d83},
	{0x6dd856d94d259236, 0xf103b408d1245a6d},
	{0xa319ce15b0b4db31, 0xa1f19c518c3e0b41},
	{0x073973751f12dd5e, 0x48f0c2ff42819bfd},
	{0x8a8e849eb32781a5, 0x1472ba925a4c6123},
	{0xe1925c71285279f5, 0xe3b750660989609a},
	{0x74c04bf1790c0efe, 0x6dd760ab49ed7373},
	{0x4dda48153c94938a, 0x67926c593a78bcaa},
	{0x9d266d6a1cc0542c, 0x5978ff009a18007c},
	{0x7440fb816508c4fe, 0x5568e6bf328b448e},
	{0x13328503df48229f, 0x7cc90fbed1165f2b},
	{0xd6bf7baee43cac40, 0x156f28d728f97cba},
	{0x4838d65f6ef6748f, 0x2edf603ec74b4900},
	{0x1e152328f3318dea, 0xd48f299033fa9c9a},
	{0x8f8419a348f296bf, 0x543751766a18d326},
	{0x72c8834a5957b511, 0x04f25bdd180f31cb},
	{0xd7a023a73260b45c, 0xc66a3569f903b0dc},
	{0x94ebc8abcfb56dae, 0xce61b42c7eead35c},
	{0x9fc10d0f989993e0, 0xa705d68144caaf00},
	{0xde68a2355b93cae6, 0x3371ede2968498fb},
	{0xa44cfe79ae538bbe, 0x1c0c9a220f8fbf8a},
	{0x9d1d84fcce371425, 0x6631fc26158faebd},
	{0x51d2b1ab2ddfb636, 0xef0ec337ff2aef59},
	{0x2fd7e4b9e72cd38c, 0xc979ef8243e71d7a},
	{0x65ca5b96b7552210, 0xd6c1a70601c91112},
	{0xdd69a0d8ab3b546d, 0xf3a1da1866141057},
	{0x604d51b25fbf70e2, 0xd3e2b4c698f2a99e},
	{0x73aa8a564fb7ac9e, 0x1b4f5d5760ac5121},
	{0x1a8c1e992b941148, 0x27d0b28f28e7d0ef},
	{0xaac40a2703d9bea0, 0xf3a2d309d1e72bc0},
	{0x764dbeae7fa4f3a6, 0x1294c73b3f914dda},
	{0x1e99b96e70a9be8b, 0x56dab15dc8b3fc48},
	{0x2c5e9deb57ef4743, 0x5b77d3202095d45c},
	{0x3a938fee32d29981, 0xe0d317e26a17ae47},
	{0x26e6db8ffdf5adfe, 0x5b1d671e17069897},
	{0x469356c504ec9f9d, 0x937dc438ef99030b},
	{0xc8763c5b08d1908c, 0xce09ea57087ebea9},
	{0x3f6c6af859d80055, 0xd0d8fac3d4cfa048},
	{0x7f7cc39420a3a545, 0x27a5886862d56b94},
	{0x9bfb227ebdf4c5ce, 0x591673661c00d80b},
	{0x89039d79d6fc5c5c, 0xd1cc44ae71a9791d},
	{0x8fe88b57305e2ab6, 0xdf5a715ada209d36},
	// white rook
	{0xa09e8c8c35ab96de, 0x491171944e677dae},
	{0xfa7e393983325753, 0xd0cf92367e04163c},
	{0xd6b6d0ecc617c699, 0x67b6a5b051ce8d5c},
	{0xdfea21ea9e7557e3, 0x88d41953044d621e},
	{0xb67c1fa481680af8, 0xb93bcd9dd369fe49},
	{0xca1e3785a9e724e5, 0x79999db57b235430},
	{0x1cfc8bed0d681639, 0x20bad52dd13a90d4},
	{0xd18d8549d140caea, 0x4cccc5ae16a29dd2},
	{0x4ed0fe7e9dc91335, 0xa0615c69803b77c7},
	{0xe4dbf0634473f5d2, 0x2e2cb0938ba801a0},
	{0x1761f93a44d5aefe, 0x7ba91914cab50528},
	{0x53898e4c3910da55, 0x2738873108dcba8a},
	{0x734de8181f6ec39a, 0x4502a97899131230},
	{0x2680b122baa28d97, 0x38108697800e8bb5},
	{0x298af231c85bafab, 0xa46ede145d66a90b},
	{0x7983eed3740847d5, 0xe99d73feedfd98b3},
	{0x66c1a2a1a60cd889, 0x3267a96bed604a38},
	{0x9e17e49642a3e4c1, 0xad66f2c81cc3fc42},
	{0xedb454e7badc0805, 0xfa2de5ba2d8c3693},
	{0x50b704cab602c329, 0xd4ca1c86d116bcbd},
	{0x4cc317fb9cddd023, 0x525f7774ee1dde6b},
	{0x66b4835d9eafea22, 0xa8e346682e2883b9},
	{0x219b97e26ffc81bd, 0xae03d84b90df4cb2},
	{0x261e4e4c0a333a9d, 0xd12735c3d08e24d9},
	{0x1fe2cca76517db90, 0xb737b467cee71d3a},
	{0xd7504dfa8816edbb, 0x36970fe334b2a37e},
	{0xb9571fa04dc089c8, 0xd5c73db7872be26f},
	{0x1ddc0325259b27de, 0x8aeb0ed56a4177fa},
	{0xcf3f4688801eb9aa, 0x0199f29dbf7a1802},
	{0xf4f5d05c10cab243, 0x1caba957a1ff78f0},
	{0x38b6525c21a42b0e, 0x2abfd2ecbf62492e},
	{0x36f60e2ba4fa6800, 0xadd370c3cd316a3e},
	{0xeb3593803173e0ce, 0x08a307d218ffbcbf},
	{0x9c4cd6257c5a3603, 0x7bf02813994b261f},
	{0xaf0c317d32adaa8a, 0x894290366274ef43},
	{0x258e5a80c7204c4b, 0xc0821c96582294b4},
	{0x8b889d624d44885d, 0xbd2ce07a63da7db1},
	{0xf4d14597e660f855, 0x03ba38df61dba3a6},
	{0xd4347f66ec8941c3, 0x4bc8ce1e706bb08d},
	{0xe699ed85b0dfb40d, 0x7dca263ea9024a3c},
	{0x2472f6207c2d0484, 0x4e876b140c9cda33},
	{0xc2a1e7b5b459aeb5, 0x5bdabc35a2fa1b4e},
	{0xab4f6451cc1d45ec, 0x383a46ece18c27c4},
	{0x63767572ae3d6174, 0x532ee826c31a9b81},
	{0xa59e0bd101731a28, 0x84f3d8faecfd7924},
	{0x116d0016cb948f09, 0xba905cc371f066d9},
	{0x2cf9c8ca052f6e9f, 0x3da882318279b416},
	{0x0b090a7560a968e3, 0xb3566f6dccae32ed},
	{0xabeeddb2dde06ff1, 0x6eb13ec5ca4cb179},
	{0x58efc10b06a2068d, 0xab38266303f672c0},
	{0xc6e57a78fbd986e0, 0xc5e23f8698084689},
	{0x2eab8ca63ce802d7, 0x502fe8a1ce0a1bc6},
	{0x14a195640116f336, 0x4664fe5154093ec2},
	{0x7c0828dd624ec390, 0x3e39d0fefb4ffaf8},
	{0xd74bbe77e6116ac7, 0x4162ffb2b58aed88},
	{0x804456af10f5fb53, 0x5e1e505c7c916883},
	{0xebe9ea2adf4321c7, 0x2185b1f34d275173},
	{0x03219a39ee587a30, 0xdb898d0487271365},
	{0x49787fef17af9924, 0xddb7e20f4f0b0a5f},
	{0xa1e9300cd8520548, 0xe39ecdbb80830b57},
	{0x5b45e522e4b1b4ef, 0xd1e12d09eb3d6c76},
	{0xb49c3b3995091a36, 0xf33de05912951acf},
	{0xd4490ad526f14431, 0x7ddca4e7cf6a2022},
	{0x12a8f216af9418c2, 0x37dae73934d2b45c},
	// black queen
	{0x001f837cc7350524, 0xddf7d6c08847b906},
	{0x1877b51e57a764d5, 0x76a4f4c4bd5b4dc4},
	{0xa2853b80f17f58ee, 0xde916ef3cda04b7a},
	{0x993e1de72d36d310, 0xf79a5f06f0548dcf},
	{0xb3598080ce64a656, 0x7980b63a972639bc},
	{0x252f59cf0d9f04bb, 0xc327c42efcd3dcb0},
	{0xd23c8e176d113600, 0x8ae99f5a13771265},
	{0x1bda0492e7e4586e, 0xaeb96c60887bf568},
	{0x21e0bd5026c619bf, 0x0262cf9cfb1be6f7},
	{0x3b097adaf088f94e, 0x96f28db3af9f8eaf},
	{0x8d14dedb30be846e, 0xbd74fc2e2cd130ed},
	{0xf95cffa23af5f6f4, 0xbfb40b3bf2130455},
	{0x3871700761b3f743, 0x0d27390428f909cc},
	{0xca672b91e9e4fa16, 0xe64118d41047bff4},
	{0x64c8e531bff53b55, 0x9f175874ee74dfc0},
	{0x241260ed4ad1e87d, 0x3c41278759da9b49},
	{0x106c09b972d2e822, 0xce243a587f0b6bbd},
	{0x7fba195410e5ca30, 0x19790b6cab0ef9bc},
	{0x7884d9bc6cb569d8, 0x1b7bb956b20e0ff1},
	{0x0647dfedcd894a29, 0xfcd55d2a3d92556c},
	{0x63573ff03e224774, 0x4f6a491571d2a627},
	{0x4fc8e9560f91b123, 0x2a4bd439b9085684},
	{0x1db956e450275779, 0xb8eb5b22d497aa9d},
	{0xb8d91274b9e9d4fb, 0xf6cb137e88679a76},
	{0xa2ebee47e2fbfce1, 0x22bc990578e7dd2c},
	{0xd9f1f30ccd97fb09, 0x01fc46a5af41ba72},
	{0xefed53d75fd64e6b, 0x9ee540b9ce7e922a},
	{0x2e6d02c36017f67f, 0x5a823d7da29de33e},
	{0xa9aa4d20db084e9b, 0xdcb54247ed750238},
	{0xb64be8d8b25396c1, 0xbbe346044327e21a},
	{0x70cb6af7c2d5bcf0, 0x3905a0daabfe04e3},
	{0x98f076a4f7a2322e, 0x1670290ab9118147},
	{0xbf84470805e69b5f, 0x68163cb777eab10d},
	{0x94c3251f06f90cf3, 0xed240589e171a9a1},
	{0x3e003e616a6591e9, 0x2281ad67174bb66b},
	{0xb925a6cd0421aff3, 0x579ed522cb20efa0},
	{0x61bdd1307c66e300, 0x9c319f6b6fd2554a},
	{0xbf8d5108e27e0d48, 0x0dd4faaafa80e520},
	{0x240ab57a8b888b20, 0x74bbae7f87e860f9},
	{0xfc87614baf287e07, 0xdff318b4d732a759},
	{0xef02cdd06ffdb432, 0xc371ee9d7d2af132},
	{0xa1082c0466df6c0a, 0x76cc4be2658dda80},
	{0x8215e577001332c8, 0xfd9e506d75af7df5},
	{0xd39bb9c3a48db6cf, 0xc5a0d6e02e703f74},
	{0x2738259634305c14, 0x631701e42e35f5cf},
	{0x61cf4f94c97df93d, 0x3055402095f743c0},
	{0x1b6baca2ae4e125b, 0x37e89e5deff34268},
	{0x758f450c88572e0b, 0xcc01cd9d386a49cb},
	{0x959f587d507a8359, 0x04a328251bd5828f},
	{0xb063e962e045f54d, 0xc8dc0ff4362a8c8f},
	{0x60e8ed72c0dff5d1, 0xee814f9b3bce7af1},
	{0x7b64978555326f9f, 0x57ae92f6b7f094ef},
	{0xfd080d236da814ba, 0x0dbc0ba7bb1c2445},
	{0x8c90fd9b083f4558, 0xec57a417b3ae8ad1},
	{0x106f72fe81e2c590, 0x08d8ec9d3a3a3a85},
	{0x7976033a39f7d952, 0x18a2e3daa4c6bbe3},
	{0xa4ec0132764ca04b, 0x68f8161c35388cf9},
	{0x733ea705fae4fa77, 0xe6e7cc9733d7aa2f},
	{0xb4d8f77bc3e56167, 0x206c16a493a194f6},
	{0x9e21f4f903b33fd9, 0x221153dec7e37554},
	{0x9d765e419fb69f6d, 0xd110651aa3d83db7},
	{0xd30c088ba61ea5ef, 0x841c207674a2a59d},
	{0x5d94337fbfaf7f5b, 0xc09b4da25303cd0e},
	{0x1a4e4822eb4d7a59, 0xe48fec76c3d485e3},
	// white queen
	{0x6ffe73e81b637fb3, 0x4c37f28895f6b9e0},
	{0xddf957bc36d8b9ca, 0x97fe8d6e8425ea84},
	{0x64d0e29eea8838b3, 0xe13176251539f9db},
	{0x08dd9bdfd96b9f63, 0x4e887953d43713f5},
	{0x087e79e5a57d1d13, 0x32dc49e0f8b96e5c},
	{0xe328e230e3e2b3fb, 0x1240f0315707df84},
	{0x1c2559e30f0946be, 0xe22f60c878f03163},
	{0x720bf5f26f4d2eaa, 0x733ede4131a1662d},
	{0xb0774d261cc609db, 0x5c82e1f58657d112},
	{0x443f64ec5a371195, 0x6b39b17300529a95},
	{0x4112cf68649a260e, 0x9a366e73434c37a3},
	{0xd813f2fab7f5c5ca, 0x3af04822ac63ca77},
	{0x660d3257380841ee, 0x6c20030dcbb3e153},
	{0x59ac2c7873f910a3, 0x812bc00a41d9de43},
	{0xe846963877671a17, 0x9d698757f729c30b},
	{0x93b633abfa3469f8, 0x764407e6839c724e},
	{0xc0c0f5a60ef4cdcf, 0x347b8bcf7aa8a816},
	{0xcaf21ecd4377b28c, 0xa15cbc1e73577012},
	{0x57277707199b8175, 0x8387a4b08cc28a2e},
	{0x506c11b9d90e8b1d, 0xce827a97fe830269},
	{0xd83cc2687a19255f, 0xfc3677ad21589c7a},
	{0x4a29c6465a314cd1, 0xc902d33e0a464ec1},
	{0xed2df21216235097, 0xfb39294699a1e2aa},
	{0xb5635c95ff7296e2, 0xd7bf168e258f8f01},
	{0x22af003ab672e811, 0x2e602229d2b37a22},
	{0x52e762596bf68235, 0x821bc37e2c1f8912},
	{0x9aeba33ac6ecc6b0, 0xc57a1ba0f260acc5},
	{0x944f6de09134dfb6, 0xce78cb667346e38c},
	{0x6c47bec883a7de39, 0xbb39eae7a290fcb0},
	{0x6ad047c430a12104, 0x1bbc42a45ca20618},
	{0xa5b1cfdba0ab4067, 0xef37e286f590dcfb},
	{0x7c45d833aff07862, 0xd9708ed7ec641deb},
	{0x5092ef950a16da0b, 0x12c5e2f484724605},
	{0x9338e69c052b8e7b, 0xf3e85d7b8a77b033},
	{0x455a4b4cfe30e3f5, 0x8ee17c0021438904},
	{0x6b02e63195ad0cf8, 0x462f7fba7c2868f2},
	{0x6b17b224bad6bf27, 0xfb7a14d6137fa5b1},
	{0xd1e0ccd25bb9c169, 0x99ceec99465fe08c},
	{0xde0c89a556b9ae70, 0xa4be0f0017879351},
	{0x50065e535a213cf6, 0x48c9c74efaeff5a7},
	{0x9c1169fa2777b874, 0x682f784ba23dc02e},
	{0x78edefd694af1eed, 0x226e96a540113353},
	{0x6dc93d9526a50e68, 0xaa04b725850e2e32},
	{0xee97f453f06791ed, 0xbc3338f53303ff19},
	{0x32ab0edb696703d3, 0x94d80fc8e2559d54},
	{0x3a6853c7e70757a7, 0xb470b50e6769b2e4},
	{0x31865ced6120f37d, 0x9d5caf79d12f737c},
	{0x67fef95d92607890, 0x0335ce6790cce15a},
	{0x1f2b1d1f15f6dc9c, 0xa9d88c05289cbd6d},
	{0xb69e38a8965c6b65, 0xf3d1d29b153dbd5e},
	{0xaa9119ff184cccf4, 0x4104764512849057},
	{0xf43c732873f24c13, 0x1d6d02af20051f53},
	{0xfb4a3d794a9a80d2, 0xc8e487152b256129},
	{0x3550c2321fd6109c, 0xaf60d64fbda8f2ce},
	{0x371f77e76bb8417e, 0xbf6d091a05417402},
	{0x6bfa9aae5ec05779, 0xda184d8ff54f3fc1},
	{0xcd04f3ff001a4778, 0xb83657ca6633e2ac},
	{0xe3273522064480ca, 0x75d3e0b8feedbdb7},
	{0x9f91508bffcfc14a, 0x26a58648fd56deab},
	{0x049a7f41061a9e60, 0x5da2dbf10323e25c},
	{0xfcb6be43a9f2fe9b, 0x1e3ed1a390724f66},
	{0x08de8a1c7797da9b, 0xc76159619f3af003},
	{0x8f9887e6078735a1, 0xb4af22b5f5b26389},
	{0xb5b4071dbfc73a66, 0x466792d7a2e6c6fa},
	// black king
	{0x230e343dfba08d33, 0x66feaacd911b81a2},
	{0x43ed7f5a0fae657d, 0x94c1e6508f5f1f47},
	{0x3a88a0fbbcb05c63, 0x4206c6c80ef8fd9f},
	{0x21874b8b4d2dbc4f, 0x3c1dea6d0afcae52},
	{0x1bdea12e35f6a8c9, 0xe79cf8044680e415},
	{0x53c065c6c8e63528, 0x48676fcc85844eb5},
	{0xe34a1d250e7a8d6b, 0x62f20ecb301144ad},
	{0xd6b04d3b7651dd7e, 0x2778709cb5ff3fc7},
	{0x5e90277e7cb39e2d, 0xd87c68010650c250},
	{0x2c046f22062dc67d, 0xbe61c9fc8adc7260},
	{0xb10bb459132d0a26, 0xeaec3f6695236d35},
	{0x3fa9ddfb67e2f199, 0xd47e91679b5bbefc},
	{0x0e09b88e1914f7af, 0x195693617db7534c},
	{0x10e8b35af3eeab37, 0x2725134b52fd2c81},
	{0x9eedeca8e272b933, 0x22770ffa079a1704},
	{0xd4c718bc4ae8ae5f, 0x012c2a69dda5ad22},
	{0x81536d601170fc20, 0x09338c04f427a66f},
	{0x91b534f885818a06, 0x0d85fd7519aa9dec},
	{0xec8177f83f900978, 0x0246a0f9fd642861},
	{0x190e714fada5156e, 0xac615f38f5a451ea},
	{0xb592bf39b0364963, 0x07a44f6430336f1c},
	{0x89c350c893ae7dc1, 0x2184303422b53201},
	{0xac042e70f8b383f2, 0x6e47c77585ab8164},
	{0xb49b52e587a1ee60, 0x55d75131c650586c},
	{0xfb152fe3ff26da89, 0x420514ac928637fa},
	{0x3e666e6f69ae2c15, 0xbb00290a9289ce13},
	{0x3b544ebe544c19f9, 0x321f8022ccc2553a},
	{0xe805a1e290cf2456, 0x7effcb24d14c9d18},
	{0x24b33c9d7ed25117, 0xdc418c09511a5174},
	{0xe74733427b72f0c1, 0x1130c8b2334d05c7},
	{0x0a804d18b7097475, 0x57f10554d8e9323b},
	{0x57e3306d881edb4f, 0x90a5ce5a89ea0b56},
	{0x4ae7d6a36eb5dbcb, 0xc27327f936e68d1b},
	{0x2d8d5432157064c8, 0x417b730cb2a966b0},
	{0xd1e649de1e7f268b, 0x1d301ea15b8ea672},
	{0x8a328a1cedfe552c, 0xf14dee3399ddf91c},
	{0x07a3aec79624c7da, 0xbd989097807f7fbf},
	{0x84547ddc3e203c94, 0xc3a0533a6d96954b},
	{0x990a98fd5071d263, 0x1992575160c43696},
	{0x1a4ff12616eefc89, 0xd49493b523ad7777},
	{0xf6f7fd1431714200, 0xb77c0f9cf9e436f2},
	{0x30c05b1ba332f41c, 0xe62702fef78982ef},
	{0x8d2636b81555a786, 0x236a476ed9466eb7},
	{0x46c9feb55d120902, 0xe304cfd61b4f416c},
	{0xccec0a73b49c9921, 0x2cb2ea092e5f1215},
	{0x4e9d2827355fc492, 0xe2004d8b7660e169},
	{0x19ebb029435dcb0f, 0x7fcabe79c4442ade},
	{0x4659d2b743848a2c, 0x3ec3d0686df24ad5},
	{0x963ef2c96b33be31, 0x8f3d9e86c7b31fff},
	{0x74f85198b05a2e7d, 0x6ba130e1edb0873d},
	{0x5a0f544dd2b1fb18, 0x40fe52eaaac04a87},
	{0x03727073c2e134b1, 0x789eb8c74c29b5bd},
	{0xc7f6aa2de59aea61, 0x4630d70199d8fe85},
	{0x352787baa0d7c22f, 0xc4f6e06e6eadb36d},
	{0x9853eab63b5e0b35, 0x2d9cd0536bddc355},
	{0xabbdcdd7ed5c0860, 0x9522ac8d318de072},
	{0xcf05daf5ac8d77b0, 0xdac15872053fb2a8},
	{0x49cad48cebf4a71e, 0x4b63b05120422ba5},
	{0x7a4c10ec2158c4a6, 0xc4f797ac06e0c775},
	{0xd9e92aa246bf719e, 0x4b9efbbed8c2bd98},
	{0x13ae978d09fe5557, 0x67b2d7640bd6d12a},
	{0x730499af921549ff, 0x69216ca21f6e1bf4},
	{0x4e4b705b92903ba4, 0x49ab0589118fe345},
	{0xff577222c14f0a3a, 0x90b672aaf0764986},
	// white king
	{0x55b6344cf97aafae, 0xc24aa6db9b0e9300},
	{0xb862225b055b6960, 0x8478cc06efce550e},
	{0xcac09afbddd2cdb4, 0x82e3ec2ccd28350f},
	{0xdaf8e9829fe96b5f, 0xbc059bb74b993690},
	{0xb5fdfc5d3132c498, 0xe31111d14445238b},
	{0x310cb380db6f7503, 0xa7ed1df77e79a736},
	{0xe87fbb46217a360e, 0xa137dc0582888c63},
	{0x2102ae466ebb1148, 0x7630e70040281934},
	{0xf8549e1a3aa5e00d, 0x2c17c3b74634a6d6},
	{0x07a69afdcc42261a, 0x05eff03a838a4fb4},
	{0xc4c118bfe78feaae, 0x3c28d21d40d4f80e},
	{0xf9f4892ed96bd438, 0xbeb9cec18b163f7c},
	{0x1af3dbe25d8f45da, 0xdc75195297484115},
	{0xf5b4b0b0d2deeeb4, 0x548955be3bde572b},
	{0x962aceefa82e1c84, 0xc8281bde4d280b81},
	{0x046e3ecaaf453ce9, 0x914da129a132922b},
	{0xf05d129681949a4c, 0xff11d08f1cee77a4},
	{0x964781ce734b3c84, 0x8070295bd01f6bfd},
	{0x9c2ed44081ce5fbd, 0x006a9346f317a9c9},
	{0x522e23f3925e319e, 0x37e62ccdf9739fc3},
	{0x177e00f9fc32f791, 0x5cbf8b753a7e703c},
	{0x2bc60a63a6f3b3f2, 0xfe0f162fcebe01c8},
	{0x222bbfae61725606, 0x094f481a19d464ff},
	{0x486289ddcc3d6780, 0x9737e370b3c679cf},
	{0x7dc7785b8efdfc80, 0x60d67575f3b9b1c2},
	{0x8af38731c02ba980, 0x3948fbaf41196093},
	{0x1fab64ea29a2ddf7, 0x0c204d1cfdbf6e2a},
	{0xe4d9429322cd065a, 0xb7d2d42a9be29c2a},
	{0x9da058c67844f20c, 0x49fae729fc2974b3},
	{0x24c0e332b70019b0, 0x6fb26356dad98ed6},
	{0x233003b5a6cfe6ad, 0x4847b6cc14eeffd4},
	{0xd586bd01c5c217f6, 0x3b5285a9f0152c99},
	{0x5e5637885f29bc2b, 0xff1fe7f4b91cff4c},
	{0x7eba726d8c94094b, 0x16e20774363e99d0},
	{0x0a56a5f0bfe39272, 0x437d1aa9cb4159e0},
	{0xd79476a84ee20d06, 0x7bdcc9d5c1c4da0b},
	{0x9e4c1269baa4bf37, 0x8fd087733782eecd},
	{0x17efee45b0dee640, 0xbf94dee3ad478cda},
	{0x1d95b0a5fcf90bc6, 0x83c94bbe4c623bf5},
	{0x93cbe0b699c2585d, 0x08fda03aa45ee9ba},
	{0x65fa4f227a2b6d79, 0xc188f92d4d403856},
	{0xd5f9e858292504d5, 0xfd6611dfb12345fc},
	{0xc2b5a03f71471a6f, 0xef003ffd18aecc12},
	{0x59300222b4561e00, 0xb7b474cbf2934019},
	{0xce2f8642ca0712dc, 0xbc2a55e58b30deee},
	{0x7ca9723fbb2e8988, 0x3e77de18337cda42},
	{0x2785338347f2ba08, 0x2f81e058ffb75885},
	{0xc61bb3a141e50e8c, 0x8f0c300cf585707e},
	{0x150f361dab9dec26, 0xcf4f4c536e0e2af2},
	{0x9f6a419d382595f4, 0x24c81ee5fd39a8e4},
	{0x64a53dc924fe7ac9, 0x2841577e66ad726e},
	{0x142de49fff7a7c3d, 0x68090c81a1357214},
	{0x0c335248857fa9e7, 0xa6aa70d44a613a24},
	{0x0a9c32d5eae45305, 0xdb805d26087f4db9},
	{0xe6c42178c4bbb92e, 0x6dd954b45a122182},
	{0x71f1ce2490d20b07, 0xc34729fd9f1948a3},
	{0xf1bcc3d275afe51a, 0xf0682ca0764cc153},
	{0xe728e8c83c334074, 0xbf29824279ca73e1},
	{0x96fbf83a12884624, 0xf0c70fb4e725caff},
	{0x81a1549fd6573da5, 0x1e18cad809e9eedc},
	{0x5fa7867caf35e149, 0xa893a8fa258f383e},
	{0x56986e2ef3ed091b, 0xe78c30cc1179b849},
	{0x917f1dd5f8886c61, 0x2e4432e6ce4996d9},
	{0xd20d8c88c8ffe65f, 0x576ec7a84e0b932d},
}

var whiteTurnMask = Mask{0xf8d626aaaf278509, 0x3815e537b6222c85}

// WK, WQ, BK, BQ
var castlingMasks = [2 * 2]Mask{
	{0x31d71dce64b2c310, 0xca3c7f8d050c44ba},
	{0xf165b587df898190, 0x8f50a115834e5414},
	{0xa57e6339dd2cf3a0, 0x77568e6e61516b92},
	{0x1ef6e6dbb1961ec9, 0xd153e6cf8d1984ea},
}

var enPassantMasks = [8]Mask{
	{0x70cc73d90bc26e24, 0x13099942ab633504},
	{0xe21a6b35df0c3ad7, 0x946c73529a2f3850},
	{0x003a93d8b2806962, 0x3d1adc27d706b921},
	{0x1c99ded33cb890a1, 0x994b8bd260c3fad2},
	{0xcf3145de0add4289, 0xf4cf0c83cace7fe4},
	{0xd0e4427a5514fb72, 0x54807a18b6952e27},
	{0x77c621cc9fb3a483, 0xe2a1aff40d08315c},
	{0x67a34dac4356550b, 0x47ec43ffbc092584},
}

// white 0-2, black 0-2
var remainingChecksMasks = [3 * 2]Mask{
	{0x1d6dc0ee61ce803e, 0x6a2ad922a69a13e9},
	{0xc6284b653d38e96a, 0x49b572c7942027d5},
	{0x803f5fb0d2f97fae, 0x08c2e9271dc91e69},
	{0xb183ccc9e73df9ed, 0x088dfad983bb7913},
	{0xfdeef11602d6b443, 0x90a852cacfc0adeb},
	{0x1b0ce4198b3801a6, 0xc8ce065f15fe38f5},
}

var promotedMasks = [64]Mask{
	{0x2f9900cc2b7a19ca, 0x2b9178eb57f3db25},
	{0xf75235beb01886d3, 0x17d16678351d3778},
	{0x8ae7e29889ac9964, 0x88b17afbdae836b1},
	{0xad30091ce7cb4204, 0xa8985bb047c388b1},
	{0xaae118773ddd4e4d, 0x2577b875de120fd2},
	{0x8ec514ce4736aa07, 0xbdf2fdea13ee21fd},
	{0x26a412bd8cef4f15, 0x3bcf1cf1605da5e7},
	{0x1bdce26bd9af059f, 0x6ea6f4fb2ca4d856},
	{0xea5f4ade5acc0516, 0xb1198a9621b237f4},
	{0x69ab7ebc07650565, 0x6c87686b28782362},
	{0x3e655f895a188a1c, 0x5158703d9536de86},
	{0xf394f6882a114d65, 0xb3126fafbea75501},
	{0x3173cfa2be5bd4d3, 0x80d3335852547580},
	{0x434d20d2ca00ae71, 0xc5afc4f44d5ab019},
	{0x3ba297f73d338c93, 0x7aff7035ddcde586},
	{0x099ba1b0205a5ea5, 0xc338837c953120b2},
	{0xc49f050b5e1c5653, 0x7f8b4b715fc6eee8},
	{0xe14eec50a9c690e8, 0x76d1cd962b7c0005},
	{0x2571cc79f4ce0169, 0xad3db13d420b8915},
	{0xde0f98d6002f4323, 0xe5a6076284061351},
	{0x0682220b02e5c3e8, 0x7f61ddc8b19de688},
	{0xcb900d3a6b38c39d, 0x8648ca9be5696f33},
	{0x24620fbf09d50d66, 0x469dc25e1b32d323},
	{0x0f40a9b2781a119d, 0x4f529fa289578425},
	{0x83c6980df0d04932, 0x82d550f6a40a3d66},
	{0xab6f9af720cb5df4, 0x8e791844cfb87476},
	{0x1c906974166ee8d4, 0xb229ab8bb6054dad},
	{0x9c1ba3db0784ebda, 0x50a0b7e3c796ad7e},
	{0x81a19098d16aa929, 0x186c0c4a7a5d68d1},
	{0xfce56173c63ccefd, 0x748301e9e571a670},
	{0x43cb7aa20c6209c2, 0x2119955cd577ee40},
	{0x7e96e2ae86924bab, 0x6c57c1380ffb21fb},
	{0x01860725034b0fef, 0xadd607ff5aaaf995},
	{0xf74d369066ec4e96, 0xd41ec439c73a3e0f},
	{0x1ae9962c6e0d1232, 0x3ee343c1d9837a9e},
	{0x5d66fa465ccfc560, 0x97707414bf743321},
	{0xe9c13ae1fc36afaa, 0xe6a8ec453ed67917},
	{0xcaec4035fb840be4, 0x03845f0849e183df},
	{0x839d28adafad0f8f, 0xccd5f9e7ce7e601f},
	{0xe4703b6e30422003, 0xe2c04ba3484232d8},
	{0x1e2fd5b2827d5e43, 0x5d9b925a3e6af022},
	{0x96f1e8d8b94bd960, 0xa852b77063b9e148},
	{0x90f2075c3f43960c, 0x279d2c0c53ecaac6},
	{0xc48e0774c4f9134f, 0x39f0827a4f811c72},
	{0xf17e5f6a2cb000c7, 0x3b064b8614517b48},
	{0x6248409bf55a4925, 0xdb19bcf000dd394a},
	{0x967bd94eb30505cc, 0xa63dddb617c59634},
	{0xe91e89853f9e844f, 0xece83ffa46fd173a},
	{0xb841038e24193f08, 0x01c4d4d39c11557f},
	{0x46f3b25cae82a6cc, 0xa618dd21a5f6b67f},
	{0x3e97e042449e3ed5, 0x8356bdf440563fb0},
	{0x868a166af46dcbd2, 0xf35ad55d727351a1},
	{0xf71be788b3fd1a7a, 0xa3a0c83ec173d41c},
	{0xcb6d65410533cc37, 0xa8b2fe93fc5ddd19},
	{0x7e30d70559efaedc, 0x984fd612fa3936bd},
	{0x32db0f5ca18159ce, 0x71c7e142bb029d2a},
	{0x97a9116e874228c5, 0x759f8a9460c634a6},
	{0x85ee68ee3a175297, 0x6fa2ca2ca3bdeb90},
	{0x076a14170b409e2a, 0xea5f0228fc314b97},
	{0xbad49d47dc95855b, 0xc40c265d97e763c0},
	{0x636187d94ded991e, 0x201d68d0d89f0e31},
	{0x962e50971f09cfab, 0x1b769456c77879cf},
	{0x8f16c910d6776589, 0xa8baaf8b31da09a5},
	{0x7e3de4bfbef5566f, 0x06a79ac414c9632e},
}

var pocketMasks = [5 * 2 * 15]Mask{
	{0xb262e9f9d6123320, 0x6e21a47d5b561a1d},
	{0x91533947cdaa8bec, 0x4263a757e414fe44},
	{0xa13b56b45723a3d4, 0x93c43f67cf55b53f},
	{0x9a35cce29ca3ac75, 0xa89732f339d35eec},
	{0x2716940e1d4f28d7, 0x5df4ac25c29fbebf},
	{0x7447209cfb793066, 0x62059230cedcd78f},
	{0x5cf91d8ae6402e1a, 0x9b0f7261932d2c8e},
	{0x4625588d38487ac5, 0xfc0f99f00e0cc0e7},
	{0xe42ec6191353e3bd, 0xcba8a5a02c351aa5},
	{0x478e6cc8f6b2dada, 0x77a6c01bd0174d69},
	{0x1726fc948b994b87, 0xc200e5264100e463},
	{0xfb9d2e5a66b46741, 0x3f340a89f525effe},
	{0x7f668e401ffe9e6f, 0xf748b2be597b2f7a},
	{0xee4d6fe11c46a236, 0xf7b2eddf7b8838c2},
	{0x006cb70064259959, 0xbdec7e9f4317a678},
	{0x33535a7c4def1b24, 0x5e022239fdf20b36},
	{0x479e792f8171fc29, 0xfdd92fa05b03b629},
	{0x656a6e71de970975, 0x80cdab95a89927dc},
	{0xcada3e48618a1c2b, 0x92cb516b8eba4a30},
	{0xb37ad7262db9c99e, 0xac950f8bce3af2d9},
	{0x85ae25402a311d5d, 0x9a43060d3aaae01a},
	{0x3de4e82d52dbb44c, 0xf12b2f6012f9333c},
	{0xb1c8499674464c21, 0x8ae9143ece61584a},
	{0xf1c1853cc6827b84, 0x676f70930e72993c},
	{0x51f97ed3ba004fb0, 0x25e0f5f014476a1f},
	{0x00da9ede878e3e98, 0x1e33827f042de978},
	{0x3cd0fd658e1cdb12, 0xdd158e4a7838524d},
	{0xac2940b688a1d0f9, 0x2b75316dfa1b15e2},
	{0xe51acb5b336db0df, 0x0283b57f325ea495},
	{0xcf7517fbdcb16174, 0x146e60f56ab91765},
	{0xdfe901aba4a2ced3, 0xf50d2497f8b12819},
	{0x24bfd4b72c8852eb, 0x7600c53f3c60308b},
	{0xf085bcd9711883d4, 0xb75208a6056dc7e9},
	{0x41b71908a3d86274, 0xe5f0eb83c20e921b},
	{0x6d604cc0a2df1a69, 0x7529d0a0c95f08ed},
	{0xaedf8291e0048c39, 0x33c7b70ee04a511c},
	{0x09d3c83f59547935, 0x727a256dad06cc11},
	{0x257d5c7ebc718242, 0x1b26058e1ba73008},
	{0x56ac1c998f5c2ede, 0x09c48fc7e167f3b0},
	{0xa25c0b0679937316, 0x954f57cdf6076cd4},
	{0xa9a2a7e200faa936, 0x32facc37b50d925e},
	{0xb8e7ca4716cf9d49, 0x259698168b89f941},
	{0x9b253f89247c4c1d, 0xb4479bfb3575d3fc},
	{0x1e701e2a73f9dc4b, 0xe69d20380ad45ef5},
	{0xcdf351b289aa5a84, 0x0ea72e455dfb08e6},
	{0x2e4e118fc45fdc0d, 0x7f834fab71613f89},
	{0x80247d70885ad5ce, 0x0bef7b04290fa4d3},
	{0x0a99dccfce316ca0, 0x425d9a9261abb5b9},
	{0xb5553435dae76840, 0x231bfd9dfb70f61e},
	{0xee562004d5d14158, 0xf2ce79a69837967f},
	{0x551b5fa3ec7166a2, 0xf9012eb6947f5b8c},
	{0x2dbb493c6e9fec06, 0xe867f9c703503bf1},
	{0xf06b4c65f4bb14a1, 0xee98c9010d1d3cbc},
	{0x5f0b44d98013acb9, 0x95fc0aa1222389e8},
	{0xce7dbafa734bba8a, 0xbf7533ebb6c99102},
	{0xe009c0e355a77913, 0xbc4153720b7d8489},
	{0x21918f473cb6decf, 0xe892965f4753afa0},
	{0xdcf11e80dc14763f, 0xeaec3e0774781d2e},
	{0x7ac21357500fb0c6, 0x00b698a9c3390404},
	{0x28abe0a3761e326c, 0x84c94d9a3d13f9b5},
	{0x30b8e3da17d34c6e, 0xe4a910d516e80a37},
	{0xd999d38ffa5d771e, 0x30a99425bba73df4},
	{0x8a7e0d1367d70b28, 0x1fe92363cf099b7e},
	{0x9157bfe7ac071796, 0x3fce173a5e427cb2},
	{0xadda94b21edd779a, 0x3cf044d0bd7bfb26},
	{0x6f555cf7856f0d63, 0x14dd9fdfd382638a},
	{0x5b2a5b2788adc947, 0xa4ec5d64116068be},
	{0x500c782c8c562a42, 0x970d0225c3155df4},
	{0x20f8b3f7059d8884, 0x96bb58faf0fd1692},
	{0x79c890ed3e95f3f4, 0x183f9136b8160b83},
	{0xe64dbd474ddcf8ca, 0x85c179d22cce92b9},
	{0xa94966fbf7f270d5, 0xd355d7752b4405ff},
	{0x2473b4e6ad9faa9a, 0xda7b7aa372230d64},
	{0x98abdf9fa4b487e6, 0x8218ddc4550f6260},
	{0x75fa1ecb0717029a, 0x090f2692c727e1a1},
	{0xf6053757646a08ba, 0xce74c18e0f75f7f8},
	{0x060e2788d99813aa, 0x075081d9944cf832},
	{0x5fa61c63681ebbc8, 0x90fb343362ef172d},
	{0x90bbf42db708006a, 0xac07cd32cdd4a6c5},
	{0xb525460ec1c15916, 0x3684e6c1eaf9e5f5},
	{0x2696070a4502024d, 0x0f515afc1356a5ca},
	{0x158087442731df68, 0x282bbc7b2209e436},
	{0x65010c3ea0acfdcf, 0xc0172402afbbcbc5},
	{0xb28ecdf305a7a831, 0x34e345bfa3c47ceb},
	{0xfd037a2e2a2e54e8, 0xa56824690a26a07d},
	{0x5f09f3763f6a4882, 0x82de3ff226f8520b},
	{0xe0125e53c4e64b83, 0xd6e502a609ba9dde},
	{0x1de44a244be3752a, 0x3b40c681d5b6e330},
	{0xf78919dfb05f031c, 0x23c2312838f00cc0},
	{0xbf81caebad91d8e1, 0x6e63a230b2eab193},
	{0xbc3780dce0bd58d5, 0x9a08aa69fb121fc8},
	{0x65b5fb1afa5c5714, 0x551be806bb80e780},
	{0xb7ddb798d0c1ff23, 0x5ab7fd28c7b96a6b},
	{0xa823d99d1504f4d6, 0xb3277b903da3eab9},
	{0xa3c526e07f1cf98d, 0xaf84fcbb2d16fa25},
	{0xa848f93e7a83ece4, 0x1c53b33de31ba544},
	{0x21e3941600abaaec, 0x4186f24fae7b9c26},
	{0x534a070449a9238d, 0x4bccd3e248e2a69c},
	{0xf86c2e4bb82d3923, 0x8d6b46aee9ae0606},
	{0xa594b44c256b41f8, 0x7b281261c9e1028e},
	{0xf1503a710531b677, 0x6c501072a1108abe},
	{0x171a27a1b9911e11, 0xa8c4da9ba7c8a22a},
	{0xd8d8a26ac022ebe6, 0x88d5489e8bc29294},
	{0x151ca9f641352f33, 0x1381a967122b289a},
	{0x553b499dc1eae685, 0xdc944a008e97acd7},
	{0x0137684bed65e27e, 0x63838f936ef425de},
	{0x254a12bd9efa3535, 0x39bd05197acaddb5},
	{0xf8361f0b0a35ef6d, 0xf5871ddb63b0aecf},
	{0xa7b7e76b7ff82166, 0xcd9a19a4addac30e},
	{0xe266e0067bc7f396, 0x08c6dce88d2bfe12},
	{0xbdd8a9037f5d0298, 0xea8c0b4c4097cc43},
	{0x2d5977c3f88a2a31, 0x74fb47cb2de1371f},
	{0x4587cd651a3bb45f, 0x8c2406a60633f3a5},
	{0xbcdc3c56ad971eb0, 0xc40387658bd2d9bf},
	{0x248b2073706e1844, 0x4616dae41e7f6769},
	{0xab03444dfb15bd0a, 0xff41e4fd3d1a34ee},
	{0xbcaff3134756ab78, 0xd9c4e712cc561f6a},
	{0xeea844cf3e1db285, 0x393520a31d54572c},
	{0xb917fdb80f355116, 0x1cc02ca62684138e},
	{0x21931f559ecefa34, 0xc1b9f65a9989c1d5},
	{0x7170c6436114a4c2, 0x86e3a7966174637c},
	{0x73d2a7c1017a2aaf, 0x80d8247d1168300a},
	{0x3b855d1755dce20e, 0x1996e2ac2b938629},
	{0x37e35078817f0dbd, 0xb26f006263639c6a},
	{0xe59b1e3389a1aad3, 0xfe1f7c18126abdd7},
	{0xbad11ebe3c3df239, 0x83b9090f7e58e659},
	{0xd54aad8a64c65c27, 0x28253df5164c46a3},
	{0xeadb37a4f7fbeb4c, 0x3448dc022a87a231},
	{0x5453586c4984a81c, 0x72ebd4eb6f76301d},
	{0xb6777cd5e1b16bcc, 0x1f5cf5c027f9df47},
	{0x24b690161baa0d65, 0xbcda2313c8ee1152},
	{0x5bd3613d2ee222fd, 0xb2ebc33394603af6},
	{0xc928bda035f8c39d, 0x84b3b1b6fa01cb1a},
	{0x29e8eeca9b09c735, 0xe16b42d53a9ecf6e},
	{0xdc35bba3f78ed4ee, 0x27b24383307c7a88},
	{0x1753c5b3ef820c81, 0x01635963de0d35f7},
	{0xef3368ab56565ae7, 0xd5667fb942e52b2f},
	{0xebf48bd35c4ead40, 0x958faa7325a97d06},
	{0x529b39d015e49755, 0x70433ecb73b7ad92},
	{0x697ea70620e98751, 0x4ab8a46b4c36eaaa},
	{0xebcabe3d4cbc0212, 0x1869111d7c4fe1a8},
	{0x2f424e669d2a7f1b, 0xfcd46428ff1e2a1e},
	{0x6ae47a9c22302f58, 0xb65e4b536bfa3559},
	{0x83f9a7b574523121, 0x180b7095853d37f3},
	{0x77b6860daa7a39d5, 0xbb0226e8c1543063},
	{0x1611e306f167e512, 0x708d753a0092df11},
	{0x2d78f39e1adbaa9d, 0x9992315a0c7adfe5},
	{0x1aada836dedb3ba7, 0xe12508294de8e35e},
	{0xf37991753c7df558, 0x49960c597d119ace},
	{0xe80840e623a19d08, 0x57b7ccbb21f74d1c},
}
